package box

import "context"

// StreamPositionNow asks the service for the current end of the event
// stream rather than a historical position.
const StreamPositionNow int64 = -1

// GetEvents reads one chunk of the user event stream starting at
// streamPosition. Pass StreamPositionNow to skip history and obtain a
// position for tailing.
func (c *Client) GetEvents(ctx context.Context, streamPosition int64, streamType StreamType, limit int) (*EventCollection, error) {
	desc := BuildEvents(streamPosition, streamType, limit)
	if streamPosition == StreamPositionNow {
		desc.Query.Set("stream_position", "now")
	}
	var events EventCollection
	if err := c.doAndDecode(ctx, desc, &events); err != nil {
		return nil, err
	}
	return &events, nil
}
