package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search papers by title or insight text",
	Long: `Search scans the collection for papers whose title, or whose extracted
problem, method, or key results, contains the query (case-insensitive).`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	s, err := openStore()
	if err != nil {
		return err
	}
	results, err := s.Search(query)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No papers found matching query.")
		return nil
	}

	fmt.Printf("Found %d papers:\n\n", len(results))
	for _, p := range results {
		fmt.Printf("- %s\n", p.Title)
		fmt.Printf("  %s\n", p.ID)
		if p.Insights.Problem != "" {
			fmt.Printf("  Problem: %s\n", clip(p.Insights.Problem, 100))
		}
		fmt.Println()
	}
	return nil
}
