package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var interestsCmd = &cobra.Command{
	Use:   "interests",
	Short: "Manage research interests",
}

var interestsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored research interests",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openInterests()
		if err != nil {
			return err
		}
		in, ok := mgr.Load()
		if !ok {
			fmt.Println("No interests configured. Run 'paper-reader init' first.")
			return nil
		}
		fmt.Printf("Areas:      %s\n", strings.Join(in.Areas, ", "))
		fmt.Printf("Topics:     %s\n", strings.Join(in.Topics, ", "))
		fmt.Printf("Categories: %s\n", strings.Join(in.Categories, ", "))
		return nil
	},
}

var interestsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an area, topic, or category",
	RunE: func(cmd *cobra.Command, args []string) error {
		return editInterests(cmd, true)
	},
}

var interestsRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an area, topic, or category",
	RunE: func(cmd *cobra.Command, args []string) error {
		return editInterests(cmd, false)
	},
}

func editInterests(cmd *cobra.Command, add bool) error {
	area, _ := cmd.Flags().GetString("area")
	topic, _ := cmd.Flags().GetString("topic")
	category, _ := cmd.Flags().GetString("category")

	if area == "" && topic == "" && category == "" {
		return fmt.Errorf("provide --area, --topic, or --category")
	}

	mgr, err := openInterests()
	if err != nil {
		return err
	}

	type edit struct {
		value string
		apply func(string) error
	}
	edits := []edit{
		{area, mgr.AddArea},
		{topic, mgr.AddTopic},
		{category, mgr.AddCategory},
	}
	if !add {
		edits = []edit{
			{area, mgr.RemoveArea},
			{topic, mgr.RemoveTopic},
			{category, mgr.RemoveCategory},
		}
	}

	for _, e := range edits {
		if e.value == "" {
			continue
		}
		if err := e.apply(e.value); err != nil {
			return err
		}
	}
	fmt.Println("Interests updated.")
	return nil
}

func init() {
	for _, c := range []*cobra.Command{interestsAddCmd, interestsRemoveCmd} {
		c.Flags().String("area", "", "research area")
		c.Flags().String("topic", "", "specific topic")
		c.Flags().String("category", "", "arXiv category (e.g. cs.LG)")
	}

	interestsCmd.AddCommand(interestsShowCmd, interestsAddCmd, interestsRemoveCmd)
	rootCmd.AddCommand(interestsCmd)
}
