package box

import "context"

// Search finds items matching query across the user's content. limit and
// offset window the results; a non-zero offset must be a multiple of a
// non-zero limit or the call fails locally before dispatch.
func (c *Client) Search(ctx context.Context, query string, limit, offset int) (*ItemCollection, error) {
	desc, err := BuildSearch(query, limit, offset)
	if err != nil {
		return nil, err
	}
	var items ItemCollection
	if err := c.doAndDecode(ctx, desc, &items); err != nil {
		return nil, err
	}
	return &items, nil
}
