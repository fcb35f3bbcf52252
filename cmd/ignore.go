package cmd

import (
	"fmt"

	"translations-manager/feature/translations"

	"github.com/spf13/cobra"
)

// ignoreCmd suppresses the errors of a lang file, or of one key in it.
var ignoreCmd = &cobra.Command{
	Use:   "ignore <locale> <file> [key]",
	Short: "Ignore the errors of a translations file or key",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIgnore(cmd, args, (*translations.Ignores).Ignore, "ignored")
	},
}

// unignoreCmd lifts an ignore set by ignoreCmd.
var unignoreCmd = &cobra.Command{
	Use:   "unignore <locale> <file> [key]",
	Short: "Stop ignoring the errors of a translations file or key",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIgnore(cmd, args, (*translations.Ignores).Unignore, "unignored")
	},
}

func init() {
	RootCmd.AddCommand(ignoreCmd, unignoreCmd)
}

func runIgnore(cmd *cobra.Command, args []string, apply func(*translations.Ignores, string, string, string) error, done string) error {
	a, err := newApp(workDir)
	if err != nil {
		return err
	}
	defer a.close()

	locale, file, key := args[0], args[1], ""
	if len(args) == 3 {
		key = args[2]
	}

	if err := apply(a.svc.Ignores, locale, file, key); err != nil {
		return err
	}

	target := locale + "/" + file
	if key != "" {
		target += "." + key
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles(out).OK(fmt.Sprintf("Successfully %s %s", done, target)))
	return nil
}
