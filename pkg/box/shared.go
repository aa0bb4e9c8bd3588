package box

import "context"

// GetSharedItem resolves a shared link to the item it points at. The link
// (and password, if any) is carried in the BoxApi header; no user-scoped
// identifier is involved.
func (c *Client) GetSharedItem(ctx context.Context, sharedLink, password string, fields ...FolderField) (*Item, error) {
	desc, err := BuildSharedItem(sharedLink, password, fieldNames(fields))
	if err != nil {
		return nil, err
	}
	var item Item
	if err := c.doAndDecode(ctx, desc, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
