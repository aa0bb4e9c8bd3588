// Package cmd (collaborations.go) defines the 'collabs' command group for
// inviting collaborators and managing pending invitations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var collabsCmd = &cobra.Command{
	Use:   "collabs",
	Short: "Manage collaborations",
}

var collabsAddCmd = &cobra.Command{
	Use:   "add <folder-id>",
	Short: "Invite a collaborator to a folder",
	Long: `Invites a collaborator to a folder with the given role. Identify the
collaborator either by user ID (--user-id) or by email (--login).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		userID, _ := cmd.Flags().GetString("user-id")
		login, _ := cmd.Flags().GetString("login")
		role, _ := cmd.Flags().GetString("role")
		if userID == "" && login == "" {
			return fmt.Errorf("one of --user-id or --login is required")
		}
		collab, err := a.Client.AddCollaboration(cmd.Context(), args[0], userID, login, role)
		if err != nil {
			return fmt.Errorf("adding collaboration: %w", err)
		}
		okColor.Printf("Collaboration %s created (%s)\n", collab.ID, collab.Status)
		return nil
	},
}

var collabsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List collaborations awaiting your acceptance",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		collabs, err := a.Client.GetPendingCollaborations(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing pending collaborations: %w", err)
		}
		if len(collabs.Entries) == 0 {
			fmt.Println("No pending collaborations.")
			return nil
		}
		headerColor.Printf("%-12s %-12s %s\n", "ID", "ROLE", "ITEM")
		for _, collab := range collabs.Entries {
			itemName := ""
			if collab.Item != nil {
				itemName = collab.Item.Name
			}
			fmt.Printf("%-12s %-12s %s\n", collab.ID, collab.Role, itemName)
		}
		return nil
	},
}

var collabsAcceptCmd = &cobra.Command{
	Use:   "accept <collaboration-id>",
	Short: "Accept a pending collaboration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return respondToCollaboration(cmd, args[0], true)
	},
}

var collabsRejectCmd = &cobra.Command{
	Use:   "reject <collaboration-id>",
	Short: "Reject a pending collaboration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return respondToCollaboration(cmd, args[0], false)
	},
}

func respondToCollaboration(cmd *cobra.Command, id string, accept bool) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}
	collab, err := a.Client.AcceptCollaboration(cmd.Context(), id, accept)
	if err != nil {
		return fmt.Errorf("responding to collaboration: %w", err)
	}
	okColor.Printf("Collaboration %s is now %s.\n", collab.ID, collab.Status)
	return nil
}

var collabsRoleCmd = &cobra.Command{
	Use:   "role <collaboration-id> <role>",
	Short: "Change a collaborator's role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		collab, err := a.Client.UpdateCollaborationRole(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("updating collaboration role: %w", err)
		}
		okColor.Printf("Collaboration %s role set to %s.\n", collab.ID, collab.Role)
		return nil
	},
}

var collabsDeleteCmd = &cobra.Command{
	Use:     "rm <collaboration-id>",
	Aliases: []string{"delete"},
	Short:   "Remove a collaboration",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.Client.DeleteCollaboration(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("deleting collaboration: %w", err)
		}
		okColor.Println("Collaboration removed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(collabsCmd)
	collabsCmd.AddCommand(collabsAddCmd)
	collabsCmd.AddCommand(collabsPendingCmd)
	collabsCmd.AddCommand(collabsAcceptCmd)
	collabsCmd.AddCommand(collabsRejectCmd)
	collabsCmd.AddCommand(collabsRoleCmd)
	collabsCmd.AddCommand(collabsDeleteCmd)

	collabsAddCmd.Flags().String("user-id", "", "ID of the user to invite")
	collabsAddCmd.Flags().String("login", "", "email address of the user to invite")
	collabsAddCmd.Flags().String("role", "viewer", "role to grant (editor, viewer, previewer, uploader, ...)")
}
