package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the modeltable CLI.`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("modeltable version %s\n", a.version)
			fmt.Printf("commit: %s\n", a.commit)
			fmt.Printf("built: %s\n", a.date)
			fmt.Printf("built by: %s\n", a.builtBy)
			fmt.Printf("go version: %s\n", runtime.Version())
			fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
