package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boxtools/box-client/pkg/box"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Read the account event stream",
	Long: `Reads events from the account's event stream. Without flags, starts at the
current position and prints nothing until activity happens; pass
--stream-position 0 to replay from the beginning of the retained window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		position, _ := cmd.Flags().GetInt64("stream-position")
		limit, _ := cmd.Flags().GetInt("limit")
		streamType, _ := cmd.Flags().GetString("stream-type")

		events, err := a.Client.GetEvents(cmd.Context(), position, box.StreamType(streamType), limit)
		if err != nil {
			return fmt.Errorf("reading events: %w", err)
		}

		for _, event := range events.Entries {
			fmt.Printf("%-26s %-24s %s\n", event.EventID, event.EventType, event.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Printf("next stream position: %d\n", events.NextStreamPosition)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().Int64("stream-position", box.StreamPositionNow, "position in the stream to read from")
	eventsCmd.Flags().Int("limit", 100, "maximum number of events to return")
	eventsCmd.Flags().String("stream-type", string(box.StreamTypeAll), "event stream to read (all, changes, sync)")
}
