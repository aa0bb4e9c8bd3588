package box

import (
	"context"
	"time"
)

const (
	hashRetryMaxAttempts = 4
	hashRetryBaseDelay   = 100 * time.Millisecond
)

// getFileWithHashRetry refetches a just-created or just-rewritten file until
// its sha1 field is populated. The service computes the content hash out of
// band after an upload, so the field can be transiently empty on an
// otherwise complete object. Before attempt n (n >= 1) the loop sleeps
// 100ms*2^n: 200, 400, 800, 1600ms. If the hash still has not appeared
// after the final attempt, the last object is returned as-is with its empty
// hash; bounded staleness is accepted rather than failing the call.
//
// Retries are invisible to callers except as latency; intermediate fetches
// are never surfaced as errors.
func (c *Client) getFileWithHashRetry(ctx context.Context, id string, fields []FileField) (*File, error) {
	var file *File
	for attempt := 0; attempt <= hashRetryMaxAttempts; attempt++ {
		if attempt > 0 {
			c.sleep(hashRetryBaseDelay * (1 << attempt))
		}
		f, err := c.GetFile(ctx, id, fields...)
		if err != nil {
			return nil, err
		}
		file = f
		if file.SHA1 != "" {
			break
		}
		c.logger.Debug("content hash not yet available", "file", id, "attempt", attempt)
	}
	return file, nil
}
