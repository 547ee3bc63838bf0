package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var notesCmd = &cobra.Command{
	Use:   "notes <paper-id> <text>",
	Short: "Set a paper's notes",
	Long: `Notes replaces the paper's notes with the given text. Pass --append to
add to the existing notes instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runNotes,
}

func init() {
	notesCmd.Flags().Bool("append", false, "append to existing notes instead of replacing")

	rootCmd.AddCommand(notesCmd)
}

func runNotes(cmd *cobra.Command, args []string) error {
	id, text := args[0], args[1]
	appendNotes, _ := cmd.Flags().GetBool("append")

	s, err := openStore()
	if err != nil {
		return err
	}
	p, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("paper %s not found", id)
	}

	if appendNotes && p.Notes != "" {
		p.Notes = p.Notes + "\n" + text
	} else {
		p.Notes = text
	}

	if err := s.Update(p); err != nil {
		return err
	}
	fmt.Printf("Notes updated for %s\n", p.Title)
	return nil
}
