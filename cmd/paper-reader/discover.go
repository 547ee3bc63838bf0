// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-reader/internal/discover"
	"github.com/pdiddy/paper-reader/pkg/types"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover recent arXiv papers matching your interests",
	Long: `Discover queries the arXiv API with a search built from your stored
research interests and lists candidate papers published within the
lookback window. Candidates are not added to the collection; use
'paper-reader add <id>' for that.`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().Int("days", 7, "days to look back")
	discoverCmd.Flags().Int("max-results", 20, "maximum papers to find")
	discoverCmd.Flags().Bool("json", false, "output candidates as JSON")

	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	days, _ := cmd.Flags().GetInt("days")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	asJSON, _ := cmd.Flags().GetBool("json")

	mgr, err := openInterests()
	if err != nil {
		return err
	}
	in, ok := mgr.Load()
	if !ok {
		return fmt.Errorf("no interests configured: run 'paper-reader init' first")
	}

	d := discover.New(newHTTPClient(), types.DiscoveryConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: defaultUserAgent},
	})

	candidates, err := d.Discover(context.Background(), in, days, maxResults)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	}

	if len(candidates) == 0 {
		fmt.Println("No papers found matching your interests.")
		return nil
	}

	fmt.Printf("Found %d papers:\n\n", len(candidates))
	for i, c := range candidates {
		fmt.Printf("%d. %s\n", i+1, c.Title)
		fmt.Printf("   Authors:   %s\n", strings.Join(firstN(c.Authors, 3), ", "))
		if len(c.PublishedDate) >= 10 {
			fmt.Printf("   Published: %s\n", c.PublishedDate[:10])
		}
		fmt.Printf("   ID:        %s\n\n", c.ID)
	}
	return nil
}

func firstN(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
