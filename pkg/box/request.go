package box

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const apiVersion = "2.0"

// RequestDescriptor is a fully-formed request: verb, path, query, headers and
// body. It is built once per logical call, immutable after construction, and
// consumed exactly once by the transport executor.
type RequestDescriptor struct {
	Kind        ResourceKind
	Method      string
	Path        string // relative to the base URL, version prefix included
	Query       url.Values
	Header      http.Header
	Body        []byte
	ContentType string
	// Raw marks the response as an opaque byte payload that must bypass
	// structured deserialization (content reads, thumbnails).
	Raw bool
}

func newDescriptor(kind ResourceKind, method string, segments ...string) *RequestDescriptor {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return &RequestDescriptor{
		Kind:   kind,
		Method: method,
		Path:   apiVersion + "/" + strings.Join(escaped, "/"),
		Query:  url.Values{},
		Header: http.Header{},
	}
}

func (d *RequestDescriptor) addFields(fields []string) {
	if len(fields) > 0 {
		d.Query.Set("fields", strings.Join(fields, ","))
	}
}

func (d *RequestDescriptor) addPaging(limit, offset int) {
	if limit > 0 {
		d.Query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		d.Query.Set("offset", strconv.Itoa(offset))
	}
}

func (d *RequestDescriptor) setJSONBody(body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshalling request body: %w", err)
	}
	d.Body = raw
	d.ContentType = "application/json"
	return nil
}

// setIfMatch attaches the optimistic-concurrency header. The header is sent
// even when etag is empty: the service treats a present-but-empty If-Match
// differently from an absent one, so once an etag slot exists the header is
// always on the wire.
func (d *RequestDescriptor) setIfMatch(etag string) {
	d.Header.Set("If-Match", etag)
}

func idReference(kind ResourceKind, id string) map[string]string {
	return map[string]string{"type": kind.typeName(), "id": id}
}

// EnsureOffsetIsMultipleOfLimit validates the pagination window before any
// network call. The service rejects offsets that are not exact multiples of
// the limit; violating inputs fail fast locally.
func EnsureOffsetIsMultipleOfLimit(limit, offset int) error {
	if limit != 0 && offset != 0 && offset%limit != 0 {
		return fmt.Errorf("%w: offset %d, limit %d", ErrInvalidPagination, offset, limit)
	}
	return nil
}

// BuildGet builds GET /2.0/{kind}/{id}. When no fields are given the fields
// parameter is omitted entirely and the service returns its default
// attribute set, which differs between a direct get and an item nested in a
// collection.
func BuildGet(kind ResourceKind, id string, fields []string) (*RequestDescriptor, error) {
	if err := requireArg("id", id); err != nil {
		return nil, err
	}
	d := newDescriptor(kind, http.MethodGet, kind.pathSegment(), id)
	d.addFields(fields)
	return d, nil
}

// BuildList builds GET /2.0/{kind}/{id}/{sub} for nested collections such as
// folder items or file comments.
func BuildList(kind ResourceKind, id, sub string, fields []string, limit, offset int) (*RequestDescriptor, error) {
	if err := requireArg("id", id); err != nil {
		return nil, err
	}
	d := newDescriptor(kind, http.MethodGet, kind.pathSegment(), id, sub)
	d.addFields(fields)
	d.addPaging(limit, offset)
	return d, nil
}

// BuildCreate builds POST /2.0/{kind} with a {name, parent:{id}} body.
func BuildCreate(kind ResourceKind, parentID, name string) (*RequestDescriptor, error) {
	if err := requireArg("parentID", parentID); err != nil {
		return nil, err
	}
	if err := requireArg("name", name); err != nil {
		return nil, err
	}
	d := newDescriptor(kind, http.MethodPost, kind.pathSegment())
	if err := d.setJSONBody(map[string]any{
		"name":   name,
		"parent": map[string]string{"id": parentID},
	}); err != nil {
		return nil, err
	}
	return d, nil
}

// BuildDelete builds DELETE /2.0/{kind}/{id}. The recursive flag is only
// meaningful for folders. If-Match is always present, empty when no etag was
// supplied.
func BuildDelete(kind ResourceKind, id string, recursive bool, etag string) (*RequestDescriptor, error) {
	if err := requireArg("id", id); err != nil {
		return nil, err
	}
	d := newDescriptor(kind, http.MethodDelete, kind.pathSegment(), id)
	if recursive && kind == ResourceFolder {
		d.Query.Set("recursive", "true")
	}
	d.setIfMatch(etag)
	return d, nil
}

// BuildCopy builds POST /2.0/{kind}/{id}/copy. A blank newName is omitted
// from the body entirely: the service distinguishes an absent name from an
// empty one, and "copy to same parent with no name" must reach the wire as
// key absence.
func BuildCopy(kind ResourceKind, id, newParentID, newName string) (*RequestDescriptor, error) {
	if err := requireArg("id", id); err != nil {
		return nil, err
	}
	if err := requireArg("newParentID", newParentID); err != nil {
		return nil, err
	}
	d := newDescriptor(kind, http.MethodPost, kind.pathSegment(), id, "copy")
	body := map[string]any{
		"parent": map[string]string{"id": newParentID},
	}
	if strings.TrimSpace(newName) != "" {
		body["name"] = newName
	}
	if err := d.setJSONBody(body); err != nil {
		return nil, err
	}
	return d, nil
}

// Update describes a sparse set of attribute changes. Only parameters that
// are set (non-empty, non-nil) appear in the outgoing body; unset attributes
// are never sent, so the service leaves them untouched instead of clearing
// them. A caller who does not set Description must never have the item's
// description wiped as a side effect.
type Update struct {
	Name        string
	Description string
	ParentID    string
	SharedLink  *SharedLink
	Message     string
	// Etag, when set, is sent as If-Match so the update only applies if
	// the caller's copy is current.
	Etag string
}

func (u Update) body() map[string]any {
	body := map[string]any{}
	if u.Name != "" {
		body["name"] = u.Name
	}
	if u.Description != "" {
		body["description"] = u.Description
	}
	if u.ParentID != "" {
		body["parent"] = map[string]string{"id": u.ParentID}
	}
	if u.SharedLink != nil {
		body["shared_link"] = u.SharedLink
	}
	if u.Message != "" {
		body["message"] = u.Message
	}
	return body
}

// BuildUpdate builds PUT /2.0/{kind}/{id} with the sparse body described by u.
func BuildUpdate(kind ResourceKind, id string, fields []string, u Update) (*RequestDescriptor, error) {
	if err := requireArg("id", id); err != nil {
		return nil, err
	}
	d := newDescriptor(kind, http.MethodPut, kind.pathSegment(), id)
	d.addFields(fields)
	if u.Etag != "" {
		d.setIfMatch(u.Etag)
	}
	if err := d.setJSONBody(u.body()); err != nil {
		return nil, err
	}
	return d, nil
}

// BuildRead builds GET /2.0/files/{id}/content. The response is opaque bytes.
func BuildRead(id string) (*RequestDescriptor, error) {
	if err := requireArg("id", id); err != nil {
		return nil, err
	}
	d := newDescriptor(ResourceFile, http.MethodGet, ResourceFile.pathSegment(), id, "content")
	d.Raw = true
	return d, nil
}

// BuildUpload builds the multipart POST /2.0/files/content used for new
// files: a folder_id string part alongside one file part of raw bytes.
func BuildUpload(folderID, name string, content []byte) (*RequestDescriptor, error) {
	if err := requireArg("folderID", folderID); err != nil {
		return nil, err
	}
	if err := requireArg("name", name); err != nil {
		return nil, err
	}
	d := newDescriptor(ResourceFile, http.MethodPost, ResourceFile.pathSegment(), "content")
	if err := d.setMultipartBody(map[string]string{"folder_id": folderID}, name, content); err != nil {
		return nil, err
	}
	return d, nil
}

// BuildWrite builds the multipart POST /2.0/files/{id}/content that replaces
// a file's content. If-Match is always present, empty when no etag was
// supplied.
func BuildWrite(id, name, etag string, content []byte) (*RequestDescriptor, error) {
	if err := requireArg("id", id); err != nil {
		return nil, err
	}
	if err := requireArg("name", name); err != nil {
		return nil, err
	}
	d := newDescriptor(ResourceFile, http.MethodPost, ResourceFile.pathSegment(), id, "content")
	d.setIfMatch(etag)
	if err := d.setMultipartBody(nil, name, content); err != nil {
		return nil, err
	}
	return d, nil
}

// BuildSearch builds GET /2.0/search. The pagination invariant is checked
// before the descriptor is built; a violation never reaches the network.
func BuildSearch(query string, limit, offset int) (*RequestDescriptor, error) {
	if err := requireArg("query", query); err != nil {
		return nil, err
	}
	if err := EnsureOffsetIsMultipleOfLimit(limit, offset); err != nil {
		return nil, err
	}
	d := newDescriptor(ResourceSearch, http.MethodGet, ResourceSearch.pathSegment())
	d.Query.Set("query", query)
	d.addPaging(limit, offset)
	return d, nil
}

// BuildEvents builds GET /2.0/events with stream position and type.
func BuildEvents(streamPosition int64, streamType StreamType, limit int) *RequestDescriptor {
	d := newDescriptor(ResourceEvent, http.MethodGet, ResourceEvent.pathSegment())
	if streamPosition >= 0 {
		d.Query.Set("stream_position", strconv.FormatInt(streamPosition, 10))
	}
	if streamType != "" {
		d.Query.Set("stream_type", string(streamType))
	}
	if limit > 0 {
		d.Query.Set("limit", strconv.Itoa(limit))
	}
	return d
}

// BuildSharedItem builds GET /2.0/shared_items. The shared link travels in
// the BoxApi header, not the path, so no identifier is required.
func BuildSharedItem(sharedLink, password string, fields []string) (*RequestDescriptor, error) {
	if err := requireArg("sharedLink", sharedLink); err != nil {
		return nil, err
	}
	d := newDescriptor(ResourceSharedItem, http.MethodGet, ResourceSharedItem.pathSegment())
	d.addFields(fields)
	d.Header.Set("BoxApi", sharedLinkHeader(sharedLink, password))
	return d, nil
}

func sharedLinkHeader(link, password string) string {
	v := "shared_link=" + url.QueryEscape(link)
	if password != "" {
		v += "&shared_link_password=" + url.QueryEscape(password)
	}
	return v
}

// BuildAddComment builds POST /2.0/comments attaching a message to an item.
func BuildAddComment(itemKind ResourceKind, itemID, message string) (*RequestDescriptor, error) {
	if err := requireArg("itemID", itemID); err != nil {
		return nil, err
	}
	if err := requireArg("message", message); err != nil {
		return nil, err
	}
	d := newDescriptor(ResourceComment, http.MethodPost, ResourceComment.pathSegment())
	if err := d.setJSONBody(map[string]any{
		"item":    idReference(itemKind, itemID),
		"message": message,
	}); err != nil {
		return nil, err
	}
	return d, nil
}

// BuildAddCollaboration builds POST /2.0/collaborations granting a user a
// role on an item. Exactly one of accessibleByID or login identifies the
// collaborator.
func BuildAddCollaboration(itemKind ResourceKind, itemID, accessibleByID, login, role string) (*RequestDescriptor, error) {
	if err := requireArg("itemID", itemID); err != nil {
		return nil, err
	}
	if err := requireArg("role", role); err != nil {
		return nil, err
	}
	if accessibleByID == "" && login == "" {
		return nil, &ArgumentError{Param: "accessibleByID"}
	}
	accessibleBy := map[string]string{"type": "user"}
	if accessibleByID != "" {
		accessibleBy["id"] = accessibleByID
	} else {
		accessibleBy["login"] = login
	}
	d := newDescriptor(ResourceCollaboration, http.MethodPost, ResourceCollaboration.pathSegment())
	if err := d.setJSONBody(map[string]any{
		"item":          idReference(itemKind, itemID),
		"accessible_by": accessibleBy,
		"role":          role,
	}); err != nil {
		return nil, err
	}
	return d, nil
}

// BuildPendingCollaborations builds GET /2.0/collaborations?status=pending,
// the only status filter the service accepts on this listing.
func BuildPendingCollaborations() *RequestDescriptor {
	d := newDescriptor(ResourceCollaboration, http.MethodGet, ResourceCollaboration.pathSegment())
	d.Query.Set("status", "pending")
	return d
}

// setMultipartBody encodes a multipart/form-data body with optional string
// parts and exactly one file part.
func (d *RequestDescriptor) setMultipartBody(params map[string]string, fileName string, content []byte) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range params {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("writing multipart field %s: %w", k, err)
		}
	}
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return fmt.Errorf("creating multipart file part: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("writing multipart content: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing multipart body: %w", err)
	}
	d.Body = buf.Bytes()
	d.ContentType = w.FormDataContentType()
	return nil
}
