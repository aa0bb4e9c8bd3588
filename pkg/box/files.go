package box

import (
	"context"
	"strconv"
)

// FileResult is the asynchronous counterpart of a (*File, error) return.
// Exactly one of File or Err is meaningful.
type FileResult struct {
	File *File
	Err  error
}

// GetFile retrieves a file's metadata.
func (c *Client) GetFile(ctx context.Context, id string, fields ...FileField) (*File, error) {
	desc, err := BuildGet(ResourceFile, id, fieldNames(fields))
	if err != nil {
		return nil, err
	}
	var file File
	if err := c.doAndDecode(ctx, desc, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// UploadFile creates a new file under folderID and refetches it until the
// asynchronously-computed content hash is populated (bounded; see the retry
// controller). The returned object can still carry an empty SHA1 if the
// service has not caught up after the final attempt.
func (c *Client) UploadFile(ctx context.Context, folderID, name string, content []byte) (*File, error) {
	desc, err := BuildUpload(folderID, name, content)
	if err != nil {
		return nil, err
	}
	return c.uploadAndRefetch(ctx, desc)
}

// UploadFileAsync is UploadFile without blocking the caller. The channel
// delivers exactly one result; the hash refetch loop behaves identically to
// the synchronous path.
func (c *Client) UploadFileAsync(ctx context.Context, folderID, name string, content []byte) <-chan FileResult {
	ch := make(chan FileResult, 1)
	go func() {
		defer close(ch)
		file, err := c.UploadFile(ctx, folderID, name, content)
		ch <- FileResult{File: file, Err: err}
	}()
	return ch
}

// WriteFile replaces a file's content. If-Match carries etag, empty when
// none was supplied. Like UploadFile, the result is refetched until the new
// content hash appears.
func (c *Client) WriteFile(ctx context.Context, id, name, etag string, content []byte) (*File, error) {
	desc, err := BuildWrite(id, name, etag, content)
	if err != nil {
		return nil, err
	}
	return c.uploadAndRefetch(ctx, desc)
}

// WriteFileAsync is WriteFile without blocking the caller.
func (c *Client) WriteFileAsync(ctx context.Context, id, name, etag string, content []byte) <-chan FileResult {
	ch := make(chan FileResult, 1)
	go func() {
		defer close(ch)
		file, err := c.WriteFile(ctx, id, name, etag, content)
		ch <- FileResult{File: file, Err: err}
	}()
	return ch
}

func (c *Client) uploadAndRefetch(ctx context.Context, desc *RequestDescriptor) (*File, error) {
	env, err := c.Do(ctx, desc)
	if err != nil {
		return nil, err
	}
	// Upload endpoints answer with a one-entry collection.
	var files FileCollection
	if err := decodeInto(env, &files); err != nil {
		return nil, err
	}
	if len(files.Entries) == 0 {
		return nil, connectionError(nil)
	}
	uploaded := files.Entries[0]
	if uploaded.SHA1 != "" {
		return &uploaded, nil
	}
	return c.getFileWithHashRetry(ctx, uploaded.ID, nil)
}

// ReadFile downloads a file's content as opaque bytes, bypassing
// deserialization. A 202 means the content is still being prepared and
// comes back as ErrNotReady with the server-suggested retry-after.
func (c *Client) ReadFile(ctx context.Context, id string) ([]byte, error) {
	desc, err := BuildRead(id)
	if err != nil {
		return nil, err
	}
	env, err := c.Do(ctx, desc)
	if err != nil {
		return nil, err
	}
	if err := classifyContentResponse(env); err != nil {
		return nil, err
	}
	return env.Body, nil
}

// GetThumbnail retrieves a PNG thumbnail for a file. ErrNotReady with a
// retry-after duration means the thumbnail has not been generated yet.
func (c *Client) GetThumbnail(ctx context.Context, id string, minWidth, minHeight int) ([]byte, error) {
	if err := requireArg("id", id); err != nil {
		return nil, err
	}
	desc, err := BuildList(ResourceFile, id, "thumbnail.png", nil, 0, 0)
	if err != nil {
		return nil, err
	}
	desc.Raw = true
	if minWidth > 0 {
		desc.Query.Set("min_width", strconv.Itoa(minWidth))
	}
	if minHeight > 0 {
		desc.Query.Set("min_height", strconv.Itoa(minHeight))
	}
	env, err := c.Do(ctx, desc)
	if err != nil {
		return nil, err
	}
	if err := classifyContentResponse(env); err != nil {
		return nil, err
	}
	return env.Body, nil
}

// UpdateFile applies a sparse update; attributes not set in u are left
// untouched server-side.
func (c *Client) UpdateFile(ctx context.Context, id string, u Update, fields ...FileField) (*File, error) {
	desc, err := BuildUpdate(ResourceFile, id, fieldNames(fields), u)
	if err != nil {
		return nil, err
	}
	var file File
	if err := c.doAndDecode(ctx, desc, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// MoveFile moves a file to a new parent folder.
func (c *Client) MoveFile(ctx context.Context, id, newParentID string) (*File, error) {
	if err := requireArg("newParentID", newParentID); err != nil {
		return nil, err
	}
	return c.UpdateFile(ctx, id, Update{ParentID: newParentID})
}

// RenameFile renames a file in place.
func (c *Client) RenameFile(ctx context.Context, id, newName string) (*File, error) {
	if err := requireArg("newName", newName); err != nil {
		return nil, err
	}
	return c.UpdateFile(ctx, id, Update{Name: newName})
}

// ShareFile creates or updates the file's shared link.
func (c *Client) ShareFile(ctx context.Context, id string, link *SharedLink) (*File, error) {
	if link == nil {
		return nil, &ArgumentError{Param: "link"}
	}
	return c.UpdateFile(ctx, id, Update{SharedLink: link})
}

// CopyFile copies a file into newParentID. An empty newName keeps the
// source name.
func (c *Client) CopyFile(ctx context.Context, id, newParentID, newName string) (*File, error) {
	desc, err := BuildCopy(ResourceFile, id, newParentID, newName)
	if err != nil {
		return nil, err
	}
	var file File
	if err := c.doAndDecode(ctx, desc, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// DeleteFile deletes a file; etag, when non-empty, makes the delete
// conditional.
func (c *Client) DeleteFile(ctx context.Context, id, etag string) error {
	desc, err := BuildDelete(ResourceFile, id, false, etag)
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, desc)
	return err
}

// GetFileComments lists the comments on a file.
func (c *Client) GetFileComments(ctx context.Context, id string, fields ...CommentField) (*CommentCollection, error) {
	desc, err := BuildList(ResourceFile, id, "comments", fieldNames(fields), 0, 0)
	if err != nil {
		return nil, err
	}
	var comments CommentCollection
	if err := c.doAndDecode(ctx, desc, &comments); err != nil {
		return nil, err
	}
	return &comments, nil
}
