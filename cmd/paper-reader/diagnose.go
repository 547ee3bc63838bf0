package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "List collection files that fail to parse",
	Long: `Diagnose reports record files that exist in the collection directory but
cannot be parsed. Such files are silently skipped by list and search; this
command makes them visible so they can be repaired or removed.`,
	RunE: runDiagnose,
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	bad, err := s.Diagnose()
	if err != nil {
		return err
	}

	if len(bad) == 0 {
		fmt.Println("All record files parse cleanly.")
		return nil
	}
	fmt.Printf("%d record file(s) failed to parse:\n", len(bad))
	for _, name := range bad {
		fmt.Printf("  - %s\n", name)
	}
	return nil
}
