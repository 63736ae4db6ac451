//go:build !windows

package main

import (
	"os"
	"syscall"
)

var refreshSignals = []os.Signal{syscall.SIGUSR1}

func isRefreshSignal(sig os.Signal) bool {
	return sig == syscall.SIGUSR1
}
