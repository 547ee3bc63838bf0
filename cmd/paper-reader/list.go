package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-reader/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all papers in the collection, grouped by status",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("status", "", "only show papers with this status (to-read, reading, read)")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	statusFilter, _ := cmd.Flags().GetString("status")

	s, err := openStore()
	if err != nil {
		return err
	}
	papers, err := s.ListAll()
	if err != nil {
		return err
	}

	if len(papers) == 0 {
		fmt.Println("No papers in collection yet. Discover papers with: paper-reader discover")
		return nil
	}

	byStatus := map[types.ReadStatus][]*types.Paper{}
	for _, p := range papers {
		byStatus[p.Status] = append(byStatus[p.Status], p)
	}

	for _, status := range []types.ReadStatus{types.StatusToRead, types.StatusReading, types.StatusRead} {
		if statusFilter != "" && string(status) != statusFilter {
			continue
		}
		group := byStatus[status]
		if len(group) == 0 {
			continue
		}
		fmt.Printf("%s (%d):\n", status, len(group))
		for _, p := range group {
			fmt.Printf("  - %s\n", p.Title)
			fmt.Printf("    %s - %s\n", p.ID, p.Insights.Classification)
		}
		fmt.Println()
	}
	return nil
}
