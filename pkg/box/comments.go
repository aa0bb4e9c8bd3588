package box

import "context"

// AddComment posts a comment on a file or discussion.
func (c *Client) AddComment(ctx context.Context, itemKind ResourceKind, itemID, message string) (*Comment, error) {
	desc, err := BuildAddComment(itemKind, itemID, message)
	if err != nil {
		return nil, err
	}
	var comment Comment
	if err := c.doAndDecode(ctx, desc, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetComment retrieves a single comment.
func (c *Client) GetComment(ctx context.Context, id string, fields ...CommentField) (*Comment, error) {
	desc, err := BuildGet(ResourceComment, id, fieldNames(fields))
	if err != nil {
		return nil, err
	}
	var comment Comment
	if err := c.doAndDecode(ctx, desc, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment changes a comment's message.
func (c *Client) UpdateComment(ctx context.Context, id, message string) (*Comment, error) {
	if err := requireArg("message", message); err != nil {
		return nil, err
	}
	desc, err := BuildUpdate(ResourceComment, id, nil, Update{Message: message})
	if err != nil {
		return nil, err
	}
	var comment Comment
	if err := c.doAndDecode(ctx, desc, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	desc, err := BuildDelete(ResourceComment, id, false, "")
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, desc)
	return err
}
