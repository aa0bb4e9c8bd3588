package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Look up users in the enterprise",
}

var usersMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		user, err := a.Client.GetCurrentUser(cmd.Context())
		if err != nil {
			return fmt.Errorf("getting current user: %w", err)
		}
		headerColor.Println(user.Name)
		fmt.Printf("  id:    %s\n", user.ID)
		fmt.Printf("  login: %s\n", user.Login)
		fmt.Printf("  space: %s of %s used\n", formatSize(user.SpaceUsed), formatSize(user.SpaceAmount))
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List users, optionally filtered by name or login prefix",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		filter, _ := cmd.Flags().GetString("filter")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")
		users, err := a.Client.GetUsers(cmd.Context(), filter, limit, offset)
		if err != nil {
			return fmt.Errorf("listing users: %w", err)
		}
		headerColor.Printf("%-12s %-24s %s\n", "ID", "LOGIN", "NAME")
		for _, user := range users.Entries {
			fmt.Printf("%-12s %-24s %s\n", user.ID, user.Login, user.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersMeCmd)
	usersCmd.AddCommand(usersListCmd)

	usersListCmd.Flags().String("filter", "", "only return users whose name or login starts with this term")
	usersListCmd.Flags().Int("limit", 0, "maximum number of users to return")
	usersListCmd.Flags().Int("offset", 0, "offset into the collection, must be a multiple of limit")
}
