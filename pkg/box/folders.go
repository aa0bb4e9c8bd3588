package box

import "context"

// GetFolder retrieves a folder's metadata. With no fields the service
// returns its default attribute set.
func (c *Client) GetFolder(ctx context.Context, id string, fields ...FolderField) (*Folder, error) {
	desc, err := BuildGet(ResourceFolder, id, fieldNames(fields))
	if err != nil {
		return nil, err
	}
	var folder Folder
	if err := c.doAndDecode(ctx, desc, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// GetFolderItems lists the items in a folder with an optional pagination
// window.
func (c *Client) GetFolderItems(ctx context.Context, id string, limit, offset int, fields ...FolderField) (*ItemCollection, error) {
	desc, err := BuildList(ResourceFolder, id, "items", fieldNames(fields), limit, offset)
	if err != nil {
		return nil, err
	}
	var items ItemCollection
	if err := c.doAndDecode(ctx, desc, &items); err != nil {
		return nil, err
	}
	return &items, nil
}

// CreateFolder creates a folder under parentID. The root folder's id is "0".
func (c *Client) CreateFolder(ctx context.Context, parentID, name string) (*Folder, error) {
	desc, err := BuildCreate(ResourceFolder, parentID, name)
	if err != nil {
		return nil, err
	}
	var folder Folder
	if err := c.doAndDecode(ctx, desc, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// DeleteFolder deletes a folder. recursive must be set for non-empty
// folders; etag, when non-empty, makes the delete conditional on the
// caller's copy being current.
func (c *Client) DeleteFolder(ctx context.Context, id string, recursive bool, etag string) error {
	desc, err := BuildDelete(ResourceFolder, id, recursive, etag)
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, desc)
	return err
}

// CopyFolder copies a folder into newParentID. An empty newName keeps the
// source name.
func (c *Client) CopyFolder(ctx context.Context, id, newParentID, newName string) (*Folder, error) {
	desc, err := BuildCopy(ResourceFolder, id, newParentID, newName)
	if err != nil {
		return nil, err
	}
	var folder Folder
	if err := c.doAndDecode(ctx, desc, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// UpdateFolder applies a sparse update; attributes not set in u are left
// untouched server-side.
func (c *Client) UpdateFolder(ctx context.Context, id string, u Update, fields ...FolderField) (*Folder, error) {
	desc, err := BuildUpdate(ResourceFolder, id, fieldNames(fields), u)
	if err != nil {
		return nil, err
	}
	var folder Folder
	if err := c.doAndDecode(ctx, desc, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// MoveFolder moves a folder to a new parent.
func (c *Client) MoveFolder(ctx context.Context, id, newParentID string) (*Folder, error) {
	if err := requireArg("newParentID", newParentID); err != nil {
		return nil, err
	}
	return c.UpdateFolder(ctx, id, Update{ParentID: newParentID})
}

// RenameFolder renames a folder in place.
func (c *Client) RenameFolder(ctx context.Context, id, newName string) (*Folder, error) {
	if err := requireArg("newName", newName); err != nil {
		return nil, err
	}
	return c.UpdateFolder(ctx, id, Update{Name: newName})
}

// ShareFolder creates or updates the folder's shared link.
func (c *Client) ShareFolder(ctx context.Context, id string, link *SharedLink) (*Folder, error) {
	if link == nil {
		return nil, &ArgumentError{Param: "link"}
	}
	return c.UpdateFolder(ctx, id, Update{SharedLink: link})
}

// GetFolderDiscussions lists the discussions on a folder.
func (c *Client) GetFolderDiscussions(ctx context.Context, id string) (*DiscussionCollection, error) {
	desc, err := BuildList(ResourceFolder, id, "discussions", nil, 0, 0)
	if err != nil {
		return nil, err
	}
	var discussions DiscussionCollection
	if err := c.doAndDecode(ctx, desc, &discussions); err != nil {
		return nil, err
	}
	return &discussions, nil
}

// GetFolderCollaborations lists the collaborations on a folder.
func (c *Client) GetFolderCollaborations(ctx context.Context, id string) (*CollaborationCollection, error) {
	desc, err := BuildList(ResourceFolder, id, "collaborations", nil, 0, 0)
	if err != nil {
		return nil, err
	}
	var collabs CollaborationCollection
	if err := c.doAndDecode(ctx, desc, &collabs); err != nil {
		return nil, err
	}
	return &collabs, nil
}
