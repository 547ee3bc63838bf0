package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <paper-id>",
	Short: "Delete a paper from the collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]
	yes, _ := cmd.Flags().GetBool("yes")

	s, err := openStore()
	if err != nil {
		return err
	}
	p, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("paper %s not found", id)
	}

	if !yes {
		fmt.Printf("Delete %q? [y/N] ", p.Title)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := s.Delete(id); err != nil {
		return err
	}
	fmt.Println("Paper deleted.")
	return nil
}
