package box

import (
	"context"
	"net/http"
)

// CreateDiscussion starts a discussion thread on a folder.
func (c *Client) CreateDiscussion(ctx context.Context, folderID, name string) (*Discussion, error) {
	if err := requireArg("folderID", folderID); err != nil {
		return nil, err
	}
	if err := requireArg("name", name); err != nil {
		return nil, err
	}
	desc := newDescriptor(ResourceDiscussion, http.MethodPost, ResourceDiscussion.pathSegment())
	if err := desc.setJSONBody(map[string]any{
		"parent": map[string]string{"id": folderID},
		"name":   name,
	}); err != nil {
		return nil, err
	}
	var discussion Discussion
	if err := c.doAndDecode(ctx, desc, &discussion); err != nil {
		return nil, err
	}
	return &discussion, nil
}

// GetDiscussion retrieves a discussion.
func (c *Client) GetDiscussion(ctx context.Context, id string, fields ...DiscussionField) (*Discussion, error) {
	desc, err := BuildGet(ResourceDiscussion, id, fieldNames(fields))
	if err != nil {
		return nil, err
	}
	var discussion Discussion
	if err := c.doAndDecode(ctx, desc, &discussion); err != nil {
		return nil, err
	}
	return &discussion, nil
}

// UpdateDiscussion applies a sparse update to a discussion's name or
// description.
func (c *Client) UpdateDiscussion(ctx context.Context, id string, u Update) (*Discussion, error) {
	desc, err := BuildUpdate(ResourceDiscussion, id, nil, u)
	if err != nil {
		return nil, err
	}
	var discussion Discussion
	if err := c.doAndDecode(ctx, desc, &discussion); err != nil {
		return nil, err
	}
	return &discussion, nil
}

// GetDiscussionComments lists the comments in a discussion.
func (c *Client) GetDiscussionComments(ctx context.Context, id string) (*CommentCollection, error) {
	desc, err := BuildList(ResourceDiscussion, id, "comments", nil, 0, 0)
	if err != nil {
		return nil, err
	}
	var comments CommentCollection
	if err := c.doAndDecode(ctx, desc, &comments); err != nil {
		return nil, err
	}
	return &comments, nil
}

// AddDiscussionComment posts a comment into a discussion.
func (c *Client) AddDiscussionComment(ctx context.Context, id, message string) (*Comment, error) {
	return c.AddComment(ctx, ResourceDiscussion, id, message)
}
