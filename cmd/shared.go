package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/boxtools/box-client/internal/app"
	"github.com/boxtools/box-client/pkg/box"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	folderColor = color.New(color.FgBlue)
	errorColor  = color.New(color.FgRed)
	okColor     = color.New(color.FgGreen)
)

func getApp(cmd *cobra.Command) (*app.App, error) {
	return app.NewApp(cmd)
}

// formatSize renders a byte count in a human-friendly unit.
func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

func printItems(items *box.ItemCollection) {
	headerColor.Printf("%-12s %-8s %-10s %s\n", "ID", "TYPE", "SIZE", "NAME")
	for _, item := range items.Entries {
		name := item.Name
		if item.Type == "folder" {
			name = folderColor.Sprint(name + "/")
		}
		fmt.Printf("%-12s %-8s %-10s %s\n", item.ID, item.Type, formatSize(item.Size), name)
	}
	fmt.Printf("%d of %d items\n", len(items.Entries), items.TotalCount)
}

func printFolder(folder *box.Folder) {
	headerColor.Println(folder.Name)
	fmt.Printf("  id:          %s\n", folder.ID)
	fmt.Printf("  size:        %s\n", formatSize(folder.Size))
	fmt.Printf("  etag:        %s\n", folder.Etag)
	if folder.Description != "" {
		fmt.Printf("  description: %s\n", folder.Description)
	}
	if folder.SharedLink != nil && folder.SharedLink.URL != "" {
		fmt.Printf("  shared link: %s\n", folder.SharedLink.URL)
	}
}

func printFile(file *box.File) {
	headerColor.Println(file.Name)
	fmt.Printf("  id:       %s\n", file.ID)
	fmt.Printf("  size:     %s\n", formatSize(file.Size))
	fmt.Printf("  etag:     %s\n", file.Etag)
	fmt.Printf("  sha1:     %s\n", file.SHA1)
	if file.Description != "" {
		fmt.Printf("  description: %s\n", file.Description)
	}
	if file.SharedLink != nil && file.SharedLink.URL != "" {
		fmt.Printf("  shared link: %s\n", file.SharedLink.URL)
	}
}
