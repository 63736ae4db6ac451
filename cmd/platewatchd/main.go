// Package main is the entry point for the platewatchd tray daemon.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/platewatch/platewatch/internal/cli"
	"github.com/platewatch/platewatch/internal/config"
	"github.com/platewatch/platewatch/internal/daemon"
	"github.com/platewatch/platewatch/internal/daemon/tray"
	"github.com/platewatch/platewatch/internal/models"
	"github.com/platewatch/platewatch/internal/notify"
	"github.com/platewatch/platewatch/internal/tracker"
)

func main() {
	// Parse flags
	foreground := flag.Bool("foreground", false, "Run in foreground (no system tray, log plates instead)")
	version := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *version {
		cli.PrintVersion("platewatchd")
		return
	}

	log.SetPrefix("[platewatchd] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := config.EnsureGlobalDir(); err != nil {
		log.Fatalf("Failed to create global directory: %v", err)
	}

	running, info, err := config.IsTrayRunning()
	if err != nil {
		log.Fatalf("Failed to check tray status: %v", err)
	}
	if running {
		log.Fatalf("Platewatch already running (PID %d)", info.PID)
	}

	if logFile, err := config.OpenLogFile(); err != nil {
		log.Printf("Logging to stderr only: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	if *foreground {
		log.Println("Running in foreground mode (no system tray)")
		runForeground(settings)
	} else {
		log.Println("Running with system tray")
		runWithTray(settings)
	}
}

// runForeground runs without a tray, logging each render and blocking on signals.
func runForeground(settings *models.Settings) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d, err := daemon.New(ctx, settings, notify.NewDesktop(settings.Notifications.Enabled))
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	display := tracker.NewRenderLoop(func() error {
		log.Println(tracker.Summary(d.DisplayFields()))
		return nil
	})
	if err := d.Start(ctx, display); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := config.SaveInstanceInfo(models.NewInstanceInfo(os.Getpid())); err != nil {
		log.Printf("Failed to write instance info: %v", err)
	}

	// refreshSignals stand in for the tray menu item.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, append([]os.Signal{syscall.SIGINT, syscall.SIGTERM}, refreshSignals...)...)
	for sig := range sigCh {
		if isRefreshSignal(sig) {
			d.Refresh()
			continue
		}
		log.Printf("Received signal %v, shutting down...", sig)
		break
	}

	d.Stop()
	if err := config.RemoveInstanceInfo(); err != nil {
		log.Printf("Failed to remove instance info: %v", err)
	}
	fmt.Println("Platewatch stopped")
}

// runWithTray runs with a system tray icon on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func runWithTray(settings *models.Settings) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d, err := daemon.New(ctx, settings, notify.NewDesktop(settings.Notifications.Enabled))
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	var t *tray.Tray

	onStart := func() {
		if err := d.Start(ctx, tracker.NewRenderLoop(t.Render)); err != nil {
			log.Printf("Failed to start: %v", err)
			tray.Quit()
			return
		}
		if err := config.SaveInstanceInfo(models.NewInstanceInfo(os.Getpid())); err != nil {
			log.Printf("Failed to write instance info: %v", err)
		}
		log.Printf("Platewatch started (PID %d)", os.Getpid())

		// Quit the tray on SIGINT/SIGTERM
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Printf("Received signal %v, shutting down...", sig)
			tray.Quit()
		}()
	}

	onExit := func() {
		cancel()
		d.Stop()

		if err := config.RemoveInstanceInfo(); err != nil {
			log.Printf("Failed to remove instance info: %v", err)
		}
		fmt.Println("Platewatch stopped")
	}

	t = tray.New(d, onStart, onExit)

	// This blocks the main goroutine until the tray exits.
	t.Run()
}
