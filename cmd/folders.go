// Package cmd (folders.go) defines the 'folders' command group: listing,
// creating, deleting, copying, moving, renaming and sharing folders.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boxtools/box-client/pkg/box"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "Manage folders",
}

var foldersGetCmd = &cobra.Command{
	Use:   "get <folder-id>",
	Short: "Show folder metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		folder, err := a.Client.GetFolder(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("getting folder: %w", err)
		}
		printFolder(folder)
		return nil
	},
}

var foldersListCmd = &cobra.Command{
	Use:     "ls <folder-id>",
	Aliases: []string{"list", "items"},
	Short:   "List the items in a folder",
	Long:    `Lists the contents of a folder. Folder "0" is the root of the account.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")
		items, err := a.Client.GetFolderItems(cmd.Context(), args[0], limit, offset)
		if err != nil {
			return fmt.Errorf("listing folder items: %w", err)
		}
		printItems(items)
		return nil
	},
}

var foldersCreateCmd = &cobra.Command{
	Use:   "create <parent-id> <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		folder, err := a.Client.CreateFolder(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("creating folder: %w", err)
		}
		okColor.Printf("Created folder %s (id %s)\n", folder.Name, folder.ID)
		return nil
	},
}

var foldersDeleteCmd = &cobra.Command{
	Use:     "rm <folder-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a folder",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		recursive, _ := cmd.Flags().GetBool("recursive")
		etag, _ := cmd.Flags().GetString("etag")
		if err := a.Client.DeleteFolder(cmd.Context(), args[0], recursive, etag); err != nil {
			return fmt.Errorf("deleting folder: %w", err)
		}
		okColor.Println("Folder deleted.")
		return nil
	},
}

var foldersCopyCmd = &cobra.Command{
	Use:   "cp <folder-id> <dest-parent-id>",
	Short: "Copy a folder into another folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		folder, err := a.Client.CopyFolder(cmd.Context(), args[0], args[1], name)
		if err != nil {
			return fmt.Errorf("copying folder: %w", err)
		}
		okColor.Printf("Copied to %s (id %s)\n", folder.Name, folder.ID)
		return nil
	},
}

var foldersMoveCmd = &cobra.Command{
	Use:   "mv <folder-id> <dest-parent-id>",
	Short: "Move a folder into another folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		folder, err := a.Client.MoveFolder(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("moving folder: %w", err)
		}
		okColor.Printf("Moved %s.\n", folder.Name)
		return nil
	},
}

var foldersRenameCmd = &cobra.Command{
	Use:   "rename <folder-id> <new-name>",
	Short: "Rename a folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		folder, err := a.Client.RenameFolder(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("renaming folder: %w", err)
		}
		okColor.Printf("Renamed to %s.\n", folder.Name)
		return nil
	},
}

var foldersShareCmd = &cobra.Command{
	Use:   "share <folder-id>",
	Short: "Create a shared link for a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		access, _ := cmd.Flags().GetString("access")
		folder, err := a.Client.ShareFolder(cmd.Context(), args[0], &box.SharedLink{Access: access})
		if err != nil {
			return fmt.Errorf("sharing folder: %w", err)
		}
		if folder.SharedLink != nil {
			fmt.Println(folder.SharedLink.URL)
		}
		return nil
	},
}

var foldersCollaborationsCmd = &cobra.Command{
	Use:   "collaborations <folder-id>",
	Short: "List the collaborations on a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		collabs, err := a.Client.GetFolderCollaborations(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("listing collaborations: %w", err)
		}
		headerColor.Printf("%-12s %-20s %-12s %s\n", "ID", "USER", "ROLE", "STATUS")
		for _, collab := range collabs.Entries {
			login := ""
			if collab.AccessibleBy != nil {
				login = collab.AccessibleBy.Login
			}
			fmt.Printf("%-12s %-20s %-12s %s\n", collab.ID, login, collab.Role, collab.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(foldersCmd)
	foldersCmd.AddCommand(foldersGetCmd)
	foldersCmd.AddCommand(foldersListCmd)
	foldersCmd.AddCommand(foldersCreateCmd)
	foldersCmd.AddCommand(foldersDeleteCmd)
	foldersCmd.AddCommand(foldersCopyCmd)
	foldersCmd.AddCommand(foldersMoveCmd)
	foldersCmd.AddCommand(foldersRenameCmd)
	foldersCmd.AddCommand(foldersShareCmd)
	foldersCmd.AddCommand(foldersCollaborationsCmd)

	foldersListCmd.Flags().Int("limit", 0, "maximum number of items to return")
	foldersListCmd.Flags().Int("offset", 0, "offset into the collection, must be a multiple of limit")
	foldersDeleteCmd.Flags().Bool("recursive", false, "delete the folder even if it has contents")
	foldersDeleteCmd.Flags().String("etag", "", "only delete if the folder's etag matches")
	foldersCopyCmd.Flags().String("name", "", "name for the copy (defaults to the original name)")
	foldersShareCmd.Flags().String("access", "open", "shared link access level (open, company, collaborators)")
}
