package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// lockCmd snapshots reference files into their lockfiles.
var lockCmd = &cobra.Command{
	Use:   "lock [files...]",
	Short: "Record the current reference files as fully translated",
	Long: `Overwrites the lockfiles of the given lang files (every reference file when
none are given) with the current reference content. Pending reference updates
stop being reported for every locale.`,
	RunE: runLock,
}

func init() {
	RootCmd.AddCommand(lockCmd)
}

func runLock(cmd *cobra.Command, args []string) error {
	a, err := newApp(workDir)
	if err != nil {
		return err
	}
	defer a.close()

	files := args
	if len(files) == 0 {
		if files, err = a.svc.Files.ListLocale(a.svc.Settings.Reference, ""); err != nil {
			return err
		}
	}

	for _, file := range files {
		if err := a.svc.Lockfiles.Lock(file); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles(out).OK(fmt.Sprintf("Locked %d file(s)", len(files))))
	return nil
}
