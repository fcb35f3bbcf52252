package cmd

import (
	"fmt"
	"io"
	"strings"

	"translations-manager/core/ui"
	"translations-manager/feature/translations"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

var (
	// ErrValidationFailed is returned by validate when critical errors remain.
	ErrValidationFailed = zerr.New("validation failed")
	// ErrTranslationsErrors is returned by errors when any error is listed.
	ErrTranslationsErrors = zerr.New("translations files have errors")
)

var (
	errorsNoIgnore   bool
	validateNoIgnore bool
)

// statusCmd prints one table per locale with the state of every lang file.
var statusCmd = &cobra.Command{
	Use:   "status [locales...]",
	Short: "Show the status of every translations file",
	Long: `Compares the given locales (all supported locales when none are given)
against the reference locale and prints every file with its errors.
Ignored errors are listed and marked.`,
	RunE: runStatus,
}

// errorsCmd lists the errors of the given locales grouped by file.
var errorsCmd = &cobra.Command{
	Use:   "errors [locales...]",
	Short: "List errors in translations files",
	RunE:  runErrors,
}

// validateCmd fails when critical errors are found.
var validateCmd = &cobra.Command{
	Use:   "validate [locales...]",
	Short: "Fail when translations files have critical errors",
	Long: `Fails when any locale has a missing, mistyped or untranslated entry.
Dead translations and reference updates are reported but do not fail validation.`,
	RunE: runValidate,
}

func init() {
	errorsCmd.Flags().BoolVar(&errorsNoIgnore, "no-ignore", false, "List ignored errors too")
	validateCmd.Flags().BoolVar(&validateNoIgnore, "no-ignore", false, "Ignored errors also fail validation")

	RootCmd.AddCommand(statusCmd, errorsCmd, validateCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp(workDir)
	if err != nil {
		return err
	}
	defer a.close()

	listing, err := a.svc.Manager.Listing(cmd.Context(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := styles(out)
	for _, loc := range listing.Locales() {
		fmt.Fprintf(out, "%s %s\n", st.Title("Locale: "+loc.Code()), st.Muted("("+translations.DisplayName(loc.Code())+")"))

		tbl := ui.NewTable(out, "FILE", "KEY", "IGNORED", "STATUS")
		for _, file := range loc.Files() {
			errs := file.Errors(false)
			if len(errs) == 0 {
				tbl.Row(file.Path(), "", mark(file.Ignored()), st.OK("ok"))
				continue
			}
			for i, e := range errs {
				path := ""
				if i == 0 {
					path = file.Path()
				}
				tbl.Row(path, e.Key, mark(file.Ignored() || e.Ignored), badge(st, e))
			}
		}
		if err := tbl.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runErrors(cmd *cobra.Command, args []string) error {
	a, err := newApp(workDir)
	if err != nil {
		return err
	}
	defer a.close()

	errs, err := a.svc.Manager.Errors(cmd.Context(), args, !errorsNoIgnore)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := styles(out)
	if len(errs) == 0 {
		fmt.Fprintln(out, st.OK("There are no errors in the translations files"))
		return nil
	}

	fmt.Fprintf(out, "There are %d error(s) in the translations files:\n\n", len(errs))
	if err := printErrors(out, st, errs); err != nil {
		return err
	}
	return fmt.Errorf("%w: %d error(s)", ErrTranslationsErrors, len(errs))
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := newApp(workDir)
	if err != nil {
		return err
	}
	defer a.close()

	listing, err := a.svc.Manager.Listing(cmd.Context(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := styles(out)
	critical := listing.Critical(!validateNoIgnore)
	if len(critical) > 0 {
		if err := printErrors(out, st, critical); err != nil {
			return err
		}
		fmt.Fprintln(out, st.Fail("Validation failed"))
		return fmt.Errorf("%w: %d critical error(s)", ErrValidationFailed, len(critical))
	}

	if n := len(listing.Errors(!validateNoIgnore)); n > 0 {
		fmt.Fprintln(out, st.Warn(fmt.Sprintf("%d informational error(s), run 'errors' for details", n)))
	}
	fmt.Fprintln(out, st.OK("Validation passed"))
	return nil
}

// printErrors renders errs as one table per locale and file, keeping their order.
func printErrors(out io.Writer, st *ui.Styles, errs []translations.Error) error {
	var tbl *ui.Table
	current := ""
	for _, e := range errs {
		if id := e.Locale + "/" + e.File; id != current {
			if tbl != nil {
				if err := tbl.Flush(); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			current = id
			fmt.Fprintln(out, st.Title(id))
			tbl = ui.NewTable(out, "KEY", "ERROR")
		}
		tbl.Row(e.Key, badge(st, e))
	}
	if tbl != nil {
		if err := tbl.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return nil
}

func badge(st *ui.Styles, e translations.Error) string {
	msg := strings.ReplaceAll(string(e.Kind), "_", " ")
	switch {
	case e.Ignored:
		return st.Muted(msg)
	case e.Critical():
		return st.Fail(msg)
	default:
		return st.Warn(msg)
	}
}

func mark(ok bool) string {
	if ok {
		return ui.Check
	}
	return ""
}
