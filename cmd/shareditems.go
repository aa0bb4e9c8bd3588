package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sharedCmd = &cobra.Command{
	Use:   "shared <shared-link-url>",
	Short: "Resolve a shared link to the item behind it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		password, _ := cmd.Flags().GetString("password")
		item, err := a.Client.GetSharedItem(cmd.Context(), args[0], password)
		if err != nil {
			return fmt.Errorf("resolving shared link: %w", err)
		}
		headerColor.Println(item.Name)
		fmt.Printf("  id:   %s\n", item.ID)
		fmt.Printf("  type: %s\n", item.Type)
		if item.Size > 0 {
			fmt.Printf("  size: %s\n", formatSize(item.Size))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sharedCmd)
	sharedCmd.Flags().String("password", "", "password for the shared link, if required")
}
