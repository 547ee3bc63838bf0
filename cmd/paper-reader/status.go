package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-reader/pkg/types"
)

var updateStatusCmd = &cobra.Command{
	Use:   "update-status <paper-id> <status>",
	Short: "Update a paper's reading status (to-read, reading, read)",
	Args:  cobra.ExactArgs(2),
	RunE:  runUpdateStatus,
}

func init() {
	rootCmd.AddCommand(updateStatusCmd)
}

func runUpdateStatus(cmd *cobra.Command, args []string) error {
	id := args[0]
	status := types.ReadStatus(args[1])
	if !types.ValidStatus(status) {
		return fmt.Errorf("invalid status %q: use to-read, reading, or read", args[1])
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	p, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("paper %s not found", id)
	}

	p.Status = status
	if err := s.Update(p); err != nil {
		return err
	}

	fmt.Printf("Updated %s\n", p.Title)
	fmt.Printf("  Status: %s\n", status)
	return nil
}
