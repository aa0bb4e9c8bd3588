// Package cmd (files.go) defines the 'files' command group: metadata,
// upload, download, overwrite, delete, move, rename, copy, sharing and
// comments.
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/boxtools/box-client/pkg/box"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage files",
}

var filesGetCmd = &cobra.Command{
	Use:   "get <file-id>",
	Short: "Show file metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		file, err := a.Client.GetFile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("getting file: %w", err)
		}
		printFile(file)
		return nil
	},
}

var filesUploadCmd = &cobra.Command{
	Use:   "upload <folder-id> <local-path>",
	Short: "Upload a local file into a folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = filepath.Base(args[1])
		}
		content, err := readWithProgress(args[1], "Uploading "+name)
		if err != nil {
			return err
		}
		file, err := a.Client.UploadFile(cmd.Context(), args[0], name, content)
		if err != nil {
			return fmt.Errorf("uploading file: %w", err)
		}
		okColor.Printf("Uploaded %s (id %s, sha1 %s)\n", file.Name, file.ID, file.SHA1)
		return nil
	},
}

var filesWriteCmd = &cobra.Command{
	Use:   "write <file-id> <local-path>",
	Short: "Overwrite a file's content with a local file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		etag, _ := cmd.Flags().GetString("etag")
		name := filepath.Base(args[1])
		content, err := readWithProgress(args[1], "Uploading "+name)
		if err != nil {
			return err
		}
		file, err := a.Client.WriteFile(cmd.Context(), args[0], name, etag, content)
		if err != nil {
			return fmt.Errorf("writing file: %w", err)
		}
		okColor.Printf("Wrote %s (sha1 %s)\n", file.Name, file.SHA1)
		return nil
	},
}

var filesDownloadCmd = &cobra.Command{
	Use:   "download <file-id> [local-path]",
	Short: "Download a file's content",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		content, err := a.Client.ReadFile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("downloading file: %w", err)
		}

		dest := args[0]
		if len(args) == 2 {
			dest = args[1]
		} else if file, err := a.Client.GetFile(cmd.Context(), args[0]); err == nil {
			dest = file.Name
		}
		if err := writeWithProgress(dest, content, "Writing "+dest); err != nil {
			return err
		}
		okColor.Printf("Downloaded to %s (%s)\n", dest, formatSize(int64(len(content))))
		return nil
	},
}

var filesThumbnailCmd = &cobra.Command{
	Use:   "thumbnail <file-id> <local-path>",
	Short: "Download a PNG thumbnail of a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		minWidth, _ := cmd.Flags().GetInt("min-width")
		minHeight, _ := cmd.Flags().GetInt("min-height")
		content, err := a.Client.GetThumbnail(cmd.Context(), args[0], minWidth, minHeight)
		if err != nil {
			return fmt.Errorf("getting thumbnail: %w", err)
		}
		if err := os.WriteFile(args[1], content, 0644); err != nil {
			return fmt.Errorf("writing thumbnail: %w", err)
		}
		okColor.Printf("Saved thumbnail to %s\n", args[1])
		return nil
	},
}

var filesDeleteCmd = &cobra.Command{
	Use:     "rm <file-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a file",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		etag, _ := cmd.Flags().GetString("etag")
		if err := a.Client.DeleteFile(cmd.Context(), args[0], etag); err != nil {
			return fmt.Errorf("deleting file: %w", err)
		}
		okColor.Println("File deleted.")
		return nil
	},
}

var filesMoveCmd = &cobra.Command{
	Use:   "mv <file-id> <dest-parent-id>",
	Short: "Move a file into another folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		file, err := a.Client.MoveFile(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("moving file: %w", err)
		}
		okColor.Printf("Moved %s.\n", file.Name)
		return nil
	},
}

var filesRenameCmd = &cobra.Command{
	Use:   "rename <file-id> <new-name>",
	Short: "Rename a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		file, err := a.Client.RenameFile(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("renaming file: %w", err)
		}
		okColor.Printf("Renamed to %s.\n", file.Name)
		return nil
	},
}

var filesCopyCmd = &cobra.Command{
	Use:   "cp <file-id> <dest-parent-id>",
	Short: "Copy a file into another folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		file, err := a.Client.CopyFile(cmd.Context(), args[0], args[1], name)
		if err != nil {
			return fmt.Errorf("copying file: %w", err)
		}
		okColor.Printf("Copied to %s (id %s)\n", file.Name, file.ID)
		return nil
	},
}

var filesShareCmd = &cobra.Command{
	Use:   "share <file-id>",
	Short: "Create a shared link for a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		access, _ := cmd.Flags().GetString("access")
		file, err := a.Client.ShareFile(cmd.Context(), args[0], &box.SharedLink{Access: access})
		if err != nil {
			return fmt.Errorf("sharing file: %w", err)
		}
		if file.SharedLink != nil {
			fmt.Println(file.SharedLink.URL)
		}
		return nil
	},
}

var filesCommentsCmd = &cobra.Command{
	Use:   "comments <file-id>",
	Short: "List the comments on a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		comments, err := a.Client.GetFileComments(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("listing comments: %w", err)
		}
		for _, comment := range comments.Entries {
			author := ""
			if comment.CreatedBy != nil {
				author = comment.CreatedBy.Login
			}
			fmt.Printf("%s [%s] %s\n", comment.ID, author, comment.Message)
		}
		return nil
	},
}

var filesCommentCmd = &cobra.Command{
	Use:   "comment <file-id> <message>",
	Short: "Add a comment to a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		comment, err := a.Client.AddComment(cmd.Context(), box.ResourceFile, args[0], args[1])
		if err != nil {
			return fmt.Errorf("adding comment: %w", err)
		}
		okColor.Printf("Comment %s added.\n", comment.ID)
		return nil
	},
}

// newTransferBar returns a progress bar configured for byte transfers,
// writing to stderr so piped stdout stays clean.
func newTransferBar(total int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(
		total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func readWithProgress(path, description string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	bar := newTransferBar(info.Size(), description)
	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), f); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

func writeWithProgress(path string, content []byte, description string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	bar := newTransferBar(int64(len(content)), description)
	if _, err := io.Copy(io.MultiWriter(f, bar), bytes.NewReader(content)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.AddCommand(filesGetCmd)
	filesCmd.AddCommand(filesUploadCmd)
	filesCmd.AddCommand(filesWriteCmd)
	filesCmd.AddCommand(filesDownloadCmd)
	filesCmd.AddCommand(filesThumbnailCmd)
	filesCmd.AddCommand(filesDeleteCmd)
	filesCmd.AddCommand(filesMoveCmd)
	filesCmd.AddCommand(filesRenameCmd)
	filesCmd.AddCommand(filesCopyCmd)
	filesCmd.AddCommand(filesShareCmd)
	filesCmd.AddCommand(filesCommentsCmd)
	filesCmd.AddCommand(filesCommentCmd)

	filesUploadCmd.Flags().String("name", "", "name for the uploaded file (defaults to the local file name)")
	filesWriteCmd.Flags().String("etag", "", "only overwrite if the file's etag matches")
	filesDeleteCmd.Flags().String("etag", "", "only delete if the file's etag matches")
	filesCopyCmd.Flags().String("name", "", "name for the copy (defaults to the original name)")
	filesShareCmd.Flags().String("access", "open", "shared link access level (open, company, collaborators)")
	filesThumbnailCmd.Flags().Int("min-width", 0, "minimum thumbnail width in pixels")
	filesThumbnailCmd.Flags().Int("min-height", 0, "minimum thumbnail height in pixels")
}
