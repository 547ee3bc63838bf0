package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-reader/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize research interests for discovery",
	Long: `Init records the research interests that drive paper discovery:
broad areas, specific topics, and optional arXiv categories. Running init
again replaces the stored interests.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("areas", "", "research areas, comma-separated (e.g. \"deep learning, signal processing\")")
	initCmd.Flags().String("topics", "", "specific topics, comma-separated (e.g. \"attention mechanisms, MIMO\")")
	initCmd.Flags().String("categories", "", "arXiv categories, comma-separated (e.g. \"cs.LG, eess.SP\")")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	areas, _ := cmd.Flags().GetString("areas")
	topics, _ := cmd.Flags().GetString("topics")
	categories, _ := cmd.Flags().GetString("categories")

	in := &types.Interests{
		Areas:      splitList(areas),
		Topics:     splitList(topics),
		Categories: splitList(categories),
	}

	mgr, err := openInterests()
	if err != nil {
		return err
	}
	if err := mgr.Save(in); err != nil {
		return err
	}

	fmt.Println("Interests saved.")
	fmt.Printf("  Areas:      %s\n", strings.Join(in.Areas, ", "))
	fmt.Printf("  Topics:     %s\n", strings.Join(in.Topics, ", "))
	if len(in.Categories) > 0 {
		fmt.Printf("  Categories: %s\n", strings.Join(in.Categories, ", "))
	}
	return nil
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
