package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection to a single YAML document",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("out", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	s, err := openStore()
	if err != nil {
		return err
	}
	papers, err := s.ListAll()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(papers)
	if err != nil {
		return fmt.Errorf("marshaling collection: %w", err)
	}

	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Printf("Exported %d papers to %s\n", len(papers), out)
	return nil
}
