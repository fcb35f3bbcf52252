package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"translations-manager/core/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunClean bool
	yesClean    bool
)

// cleanCmd removes dead translations from the given locales.
var cleanCmd = &cobra.Command{
	Use:   "clean [locales...]",
	Short: "Remove translations that no longer exist in the reference locale",
	Long: `Lists every dead translation of the given locales (all supported locales
when none are given) and removes them after confirmation.

Examples:
  # Show what would be removed
  clean --dry-run

  # Remove without prompting
  clean de fr --yes`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&dryRunClean, "dry-run", false, "Only list dead translations")
	cleanCmd.Flags().BoolVar(&yesClean, "yes", false, "Auto-confirm removal (non-interactive)")

	RootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	a, err := newApp(workDir)
	if err != nil {
		return err
	}
	defer a.close()

	listing, err := a.svc.Manager.Listing(cmd.Context(), args)
	if err != nil {
		return err
	}

	plan := a.svc.Cleaner.Plan(listing)
	out := cmd.OutOrStdout()
	st := styles(out)

	if plan.Total == 0 {
		fmt.Fprintln(out, st.OK("There are no dead translations"))
		return nil
	}

	tbl := ui.NewTable(out, "LOCALE", "FILE", "KEY")
	for _, g := range plan.Groups {
		for _, key := range g.Keys {
			tbl.Row(g.Locale, g.File, key)
		}
	}
	if err := tbl.Flush(); err != nil {
		return err
	}

	if dryRunClean {
		fmt.Fprintln(out, st.Warn(fmt.Sprintf("Dry-run: %d dead translation(s) left in place", plan.Total)))
		return nil
	}

	if !confirmDestructiveAction(cmd.InOrStdin(), out) {
		a.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	cleaned, err := a.svc.Cleaner.Apply(plan)
	if err != nil {
		return err
	}
	a.logger.Info("Cleaned dead translations", zap.Int("count", cleaned))
	fmt.Fprintln(out, st.OK(fmt.Sprintf("Cleaned %d dead translation(s)", cleaned)))
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses the --yes flag.
func confirmDestructiveAction(in io.Reader, out io.Writer) bool {
	if yesClean {
		fmt.Fprintln(out, "Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(out, "Type 'yes' to remove these translations: ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
