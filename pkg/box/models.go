package box

import (
	"encoding/json"
	"time"
)

// ItemReference is the minimal representation the service uses when one
// resource points at another, e.g. a file's parent folder.
type ItemReference struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	SequenceID string `json:"sequence_id,omitempty"`
	Etag       string `json:"etag,omitempty"`
	Name       string `json:"name,omitempty"`
}

// SharedLink is a capability-bearing URL granting access to an item without
// a full user context.
type SharedLink struct {
	URL               string                 `json:"url,omitempty"`
	DownloadURL       string                 `json:"download_url,omitempty"`
	Access            string                 `json:"access,omitempty"`
	UnsharedAt        string                 `json:"unshared_at,omitempty"`
	PasswordEnabled   bool                   `json:"password_enabled,omitempty"`
	DownloadCount     int                    `json:"download_count,omitempty"`
	PreviewCount      int                    `json:"preview_count,omitempty"`
	Permissions       *SharedLinkPermissions `json:"permissions,omitempty"`
}

// SharedLinkPermissions controls what holders of a shared link may do.
type SharedLinkPermissions struct {
	CanDownload bool `json:"can_download"`
	CanPreview  bool `json:"can_preview"`
}

// Folder is a folder resource.
type Folder struct {
	Type           string          `json:"type"`
	ID             string          `json:"id"`
	SequenceID     string          `json:"sequence_id"`
	Etag           string          `json:"etag"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Size           int64           `json:"size"`
	CreatedAt      time.Time       `json:"created_at"`
	ModifiedAt     time.Time       `json:"modified_at"`
	CreatedBy      *User           `json:"created_by,omitempty"`
	ModifiedBy     *User           `json:"modified_by,omitempty"`
	OwnedBy        *User           `json:"owned_by,omitempty"`
	Parent         *ItemReference  `json:"parent,omitempty"`
	SharedLink     *SharedLink     `json:"shared_link,omitempty"`
	ItemCollection *ItemCollection `json:"item_collection,omitempty"`
	ItemStatus     string          `json:"item_status,omitempty"`
}

// File is a file resource. SHA1 is the content hash the service computes
// asynchronously after upload; see the retry controller for the window in
// which it can be empty.
type File struct {
	Type          string         `json:"type"`
	ID            string         `json:"id"`
	SequenceID    string         `json:"sequence_id"`
	Etag          string         `json:"etag"`
	SHA1          string         `json:"sha1"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Size          int64          `json:"size"`
	CreatedAt     time.Time      `json:"created_at"`
	ModifiedAt    time.Time      `json:"modified_at"`
	CreatedBy     *User          `json:"created_by,omitempty"`
	ModifiedBy    *User          `json:"modified_by,omitempty"`
	OwnedBy       *User          `json:"owned_by,omitempty"`
	Parent        *ItemReference `json:"parent,omitempty"`
	SharedLink    *SharedLink    `json:"shared_link,omitempty"`
	VersionNumber string         `json:"version_number,omitempty"`
	ItemStatus    string         `json:"item_status,omitempty"`
}

// Item is an entry in a mixed collection; Type discriminates between
// "file", "folder" and "web_link". The default attribute set the service
// returns for nested items is smaller than for a direct get; that
// discrepancy is the service's, not ours.
type Item struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	SequenceID string         `json:"sequence_id"`
	Etag       string         `json:"etag"`
	SHA1       string         `json:"sha1,omitempty"`
	Name       string         `json:"name"`
	Size       int64          `json:"size,omitempty"`
	Parent     *ItemReference `json:"parent,omitempty"`
	SharedLink *SharedLink    `json:"shared_link,omitempty"`
}

// ItemCollection is the {total_count, entries} envelope for mixed items.
type ItemCollection struct {
	TotalCount int    `json:"total_count"`
	Entries    []Item `json:"entries"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// FileCollection is the envelope the upload endpoints answer with.
type FileCollection struct {
	TotalCount int    `json:"total_count"`
	Entries    []File `json:"entries"`
}

// Comment is a comment attached to a file or discussion.
type Comment struct {
	Type           string         `json:"type"`
	ID             string         `json:"id"`
	IsReplyComment bool           `json:"is_reply_comment"`
	Message        string         `json:"message"`
	CreatedBy      *User          `json:"created_by,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	ModifiedAt     time.Time      `json:"modified_at"`
	Item           *ItemReference `json:"item,omitempty"`
}

// CommentCollection is the {total_count, entries} envelope for comments.
type CommentCollection struct {
	TotalCount int       `json:"total_count"`
	Entries    []Comment `json:"entries"`
}

// Discussion is a discussion thread on a folder.
type Discussion struct {
	Type        string         `json:"type"`
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	Parent      *ItemReference `json:"parent,omitempty"`
}

// DiscussionCollection is the envelope for discussions.
type DiscussionCollection struct {
	TotalCount int          `json:"total_count"`
	Entries    []Discussion `json:"entries"`
}

// Collaboration grants a user a role on an item.
type Collaboration struct {
	Type         string         `json:"type"`
	ID           string         `json:"id"`
	CreatedBy    *User          `json:"created_by,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	ModifiedAt   time.Time      `json:"modified_at"`
	ExpiresAt    *time.Time     `json:"expires_at,omitempty"`
	Status       string         `json:"status"`
	AccessibleBy *User          `json:"accessible_by,omitempty"`
	Role         string         `json:"role"`
	Item         *ItemReference `json:"item,omitempty"`
}

// CollaborationCollection is the envelope for collaborations.
type CollaborationCollection struct {
	TotalCount int             `json:"total_count"`
	Entries    []Collaboration `json:"entries"`
}

// Collaboration roles accepted by the service.
const (
	RoleEditor          = "editor"
	RoleViewer          = "viewer"
	RolePreviewer       = "previewer"
	RoleUploader        = "uploader"
	RoleCoOwner         = "co-owner"
	RoleViewerUploader  = "viewer uploader"
	RolePreviewerUploader = "previewer uploader"
)

// User is a user resource, full or mini depending on context.
type User struct {
	Type          string    `json:"type"`
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Login         string    `json:"login"`
	Role          string    `json:"role,omitempty"`
	Language      string    `json:"language,omitempty"`
	Status        string    `json:"status,omitempty"`
	SpaceAmount   int64     `json:"space_amount,omitempty"`
	SpaceUsed     int64     `json:"space_used,omitempty"`
	MaxUploadSize int64     `json:"max_upload_size,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserCollection is the envelope for users.
type UserCollection struct {
	TotalCount int    `json:"total_count"`
	Entries    []User `json:"entries"`
}

// StreamType filters the event stream.
type StreamType string

const (
	StreamTypeAll     StreamType = "all"
	StreamTypeChanges StreamType = "changes"
	StreamTypeSync    StreamType = "sync"
)

// Event is one entry in the event stream. Source is left raw because its
// shape depends on the event type.
type Event struct {
	Type      string          `json:"type"`
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	SessionID string          `json:"session_id,omitempty"`
	CreatedBy *User           `json:"created_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Source    json.RawMessage `json:"source,omitempty"`
}

// EventCollection is one chunk of the event stream.
type EventCollection struct {
	ChunkSize          int     `json:"chunk_size"`
	NextStreamPosition int64   `json:"next_stream_position"`
	Entries            []Event `json:"entries"`
}
