package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/platewatch/platewatch/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		PrintVersion("platewatch")
	},
}

// PrintVersion prints build information for the named binary.
func PrintVersion(name string) {
	fmt.Printf("  %s %s\n", styleBrand.Render(name), styleVersion.Render(buildinfo.Version))
	fmt.Printf("    %s  %s\n", styleLabel.Render("Commit"), styleValue.Render(buildinfo.CommitHash))
	fmt.Printf("    %s   %s\n", styleLabel.Render("Built"), styleValue.Render(buildinfo.BuildDate))
	fmt.Printf("    %s %s\n", styleLabel.Render("OS/Arch"), styleValue.Render(runtime.GOOS+"/"+runtime.GOARCH))
	fmt.Printf("    %s      %s\n", styleLabel.Render("Go"), styleValue.Render(runtime.Version()))
}
