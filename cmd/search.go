package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for files and folders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")
		items, err := a.Client.Search(cmd.Context(), args[0], limit, offset)
		if err != nil {
			return fmt.Errorf("searching: %w", err)
		}
		if len(items.Entries) == 0 {
			fmt.Printf("No items matching %q\n", args[0])
			return nil
		}
		printItems(items)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int("limit", 0, "maximum number of results to return")
	searchCmd.Flags().Int("offset", 0, "offset into the results, must be a multiple of limit")
}
