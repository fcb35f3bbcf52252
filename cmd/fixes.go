package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// generateFixesCmd writes one fix file per locale into the fixes directory.
var generateFixesCmd = &cobra.Command{
	Use:     "generate-fixes [locales...]",
	Aliases: []string{"generate"},
	Short:   "Generate the fix files holding the values to translate",
	Long: `Writes storage/fixes/fixes-{locale}-{label}.json for every given locale
(all supported locales when none are given). Translate the values, move the files
to storage/fixed and run 'fix'.`,
	RunE: runGenerateFixes,
}

// fixCmd merges translated fix files back into their locales.
var fixCmd = &cobra.Command{
	Use:   "fix <locales...>",
	Short: "Apply translated fix files to their locales",
	Long: `Reads one fix file per locale from the fixed directory, checks every file
and key against the reference locale, then merges the translations and advances
the lockfiles. Nothing is written when any check fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	RootCmd.AddCommand(generateFixesCmd, fixCmd)
}

func runGenerateFixes(cmd *cobra.Command, args []string) error {
	a, err := newApp(workDir)
	if err != nil {
		return err
	}
	defer a.close()

	listing, err := a.svc.Manager.Listing(cmd.Context(), args)
	if err != nil {
		return err
	}

	paths, err := a.svc.Generator.WriteAll(listing)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := styles(out)
	for _, p := range paths {
		fmt.Fprintln(out, st.Muted(p))
	}
	fmt.Fprintln(out, st.OK(fmt.Sprintf("Generated %d fix file(s)", len(paths))))
	return nil
}

func runFix(cmd *cobra.Command, args []string) error {
	a, err := newApp(workDir)
	if err != nil {
		return err
	}
	defer a.close()

	a.logger.Debug("Healing locales", zap.Strings("locales", args))
	if err := a.svc.Healer.HealMany(args); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles(out).OK(fmt.Sprintf("The locale(s) '%s' have been fixed", strings.Join(args, "', '"))))
	return nil
}
