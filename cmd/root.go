package cmd

import (
	"fmt"
	"os"

	"translations-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// workDir is the project directory holding the lang folder, the storage area and the config file.
var workDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "translations-manager",
	Short: "Keep translations consistent with a reference locale",
	Long: `Translations Manager compares every locale against a reference locale,
reports missing, outdated and dead translations, and round-trips the values
that need translating through fix files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level gives ISO8601 timestamps for CLI users
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&workDir, "dir", "C", ".", "Project directory")
}
