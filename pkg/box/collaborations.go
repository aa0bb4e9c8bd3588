package box

import "context"

// AddCollaboration grants a user a role on a folder. The collaborator is
// identified by user id or, when the id is unknown, by login email.
func (c *Client) AddCollaboration(ctx context.Context, folderID, accessibleByID, login, role string) (*Collaboration, error) {
	desc, err := BuildAddCollaboration(ResourceFolder, folderID, accessibleByID, login, role)
	if err != nil {
		return nil, err
	}
	var collab Collaboration
	if err := c.doAndDecode(ctx, desc, &collab); err != nil {
		return nil, err
	}
	return &collab, nil
}

// GetCollaboration retrieves a single collaboration.
func (c *Client) GetCollaboration(ctx context.Context, id string, fields ...CollaborationField) (*Collaboration, error) {
	desc, err := BuildGet(ResourceCollaboration, id, fieldNames(fields))
	if err != nil {
		return nil, err
	}
	var collab Collaboration
	if err := c.doAndDecode(ctx, desc, &collab); err != nil {
		return nil, err
	}
	return &collab, nil
}

// GetPendingCollaborations lists collaborations awaiting the current user's
// acceptance. Pending is the only status filter the service accepts here.
func (c *Client) GetPendingCollaborations(ctx context.Context) (*CollaborationCollection, error) {
	desc := BuildPendingCollaborations()
	var collabs CollaborationCollection
	if err := c.doAndDecode(ctx, desc, &collabs); err != nil {
		return nil, err
	}
	return &collabs, nil
}

// UpdateCollaborationRole changes the role of a collaboration.
func (c *Client) UpdateCollaborationRole(ctx context.Context, id, role string) (*Collaboration, error) {
	if err := requireArg("role", role); err != nil {
		return nil, err
	}
	desc, err := BuildUpdate(ResourceCollaboration, id, nil, Update{})
	if err != nil {
		return nil, err
	}
	if err := desc.setJSONBody(map[string]string{"role": role}); err != nil {
		return nil, err
	}
	var collab Collaboration
	if err := c.doAndDecode(ctx, desc, &collab); err != nil {
		return nil, err
	}
	return &collab, nil
}

// AcceptCollaboration resolves a pending collaboration to accepted or
// rejected.
func (c *Client) AcceptCollaboration(ctx context.Context, id string, accept bool) (*Collaboration, error) {
	desc, err := BuildUpdate(ResourceCollaboration, id, nil, Update{})
	if err != nil {
		return nil, err
	}
	status := "accepted"
	if !accept {
		status = "rejected"
	}
	if err := desc.setJSONBody(map[string]string{"status": status}); err != nil {
		return nil, err
	}
	var collab Collaboration
	if err := c.doAndDecode(ctx, desc, &collab); err != nil {
		return nil, err
	}
	return &collab, nil
}

// DeleteCollaboration removes a collaboration.
func (c *Client) DeleteCollaboration(ctx context.Context, id string) error {
	desc, err := BuildDelete(ResourceCollaboration, id, false, "")
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, desc)
	return err
}
