package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <paper-id>",
	Short: "Show a paper's details and extracted insights",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	p, ok := s.Get(args[0])
	if !ok {
		return fmt.Errorf("paper %s not found", args[0])
	}

	fmt.Printf("\n%s\n\n", p.Title)
	fmt.Printf("ID:      %s\n", p.ID)
	fmt.Printf("Authors: %s\n", strings.Join(p.Authors, ", "))
	fmt.Printf("Status:  %s\n", p.Status)
	if len(p.AddedDate) >= 10 {
		fmt.Printf("Added:   %s\n", p.AddedDate[:10])
	}
	fmt.Printf("URL:     %s\n", p.URL)
	if p.PDFPath != "" {
		fmt.Printf("PDF:     %s\n", p.PDFPath)
	}

	fmt.Println("\nINSIGHTS:")
	fmt.Printf("\nProblem:\n%s\n", p.Insights.Problem)
	fmt.Printf("\nMethod:\n%s\n", p.Insights.Method)
	fmt.Printf("\nKey Results:\n%s\n", p.Insights.KeyResults)
	fmt.Println("\nContributions:")
	for _, c := range p.Insights.Contributions {
		fmt.Printf("  - %s\n", c)
	}
	fmt.Println("\nRelated Work:")
	for _, r := range p.Insights.RelatedWork {
		fmt.Printf("  - %s\n", r)
	}
	fmt.Println("\nFuture Directions:")
	for _, f := range p.Insights.FutureDirections {
		fmt.Printf("  - %s\n", f)
	}
	fmt.Printf("\nClassification: %s\n", p.Insights.Classification)

	if p.Notes != "" {
		fmt.Printf("\nNOTES:\n%s\n", p.Notes)
	}
	return nil
}
