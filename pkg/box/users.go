package box

import (
	"context"
	"net/http"
)

// GetCurrentUser retrieves the profile of the authenticated user.
func (c *Client) GetCurrentUser(ctx context.Context, fields ...UserField) (*User, error) {
	desc := newDescriptor(ResourceUser, http.MethodGet, ResourceUser.pathSegment(), "me")
	desc.addFields(fieldNames(fields))
	var user User
	if err := c.doAndDecode(ctx, desc, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsers lists the users of the enterprise, optionally filtered by a name
// or login prefix.
func (c *Client) GetUsers(ctx context.Context, filter string, limit, offset int, fields ...UserField) (*UserCollection, error) {
	if err := EnsureOffsetIsMultipleOfLimit(limit, offset); err != nil {
		return nil, err
	}
	desc := newDescriptor(ResourceUser, http.MethodGet, ResourceUser.pathSegment())
	desc.addFields(fieldNames(fields))
	desc.addPaging(limit, offset)
	if filter != "" {
		desc.Query.Set("filter_term", filter)
	}
	var users UserCollection
	if err := c.doAndDecode(ctx, desc, &users); err != nil {
		return nil, err
	}
	return &users, nil
}

// GetUser retrieves a single user by id.
func (c *Client) GetUser(ctx context.Context, id string, fields ...UserField) (*User, error) {
	desc, err := BuildGet(ResourceUser, id, fieldNames(fields))
	if err != nil {
		return nil, err
	}
	var user User
	if err := c.doAndDecode(ctx, desc, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
