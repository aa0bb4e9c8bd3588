package box

// ResourceKind identifies the category of remote entity an operation targets.
// It determines the URL path segment of the request and which field selectors
// may be used with it. The set is closed and fixed at process start.
type ResourceKind int

const (
	ResourceFolder ResourceKind = iota
	ResourceFile
	ResourceComment
	ResourceDiscussion
	ResourceCollaboration
	ResourceUser
	ResourceEvent
	ResourceToken
	ResourceSharedItem
	ResourceSearch
)

// pathSegment returns the URL segment the service uses for this resource.
func (k ResourceKind) pathSegment() string {
	switch k {
	case ResourceFolder:
		return "folders"
	case ResourceFile:
		return "files"
	case ResourceComment:
		return "comments"
	case ResourceDiscussion:
		return "discussions"
	case ResourceCollaboration:
		return "collaborations"
	case ResourceUser:
		return "users"
	case ResourceEvent:
		return "events"
	case ResourceToken:
		return "tokens"
	case ResourceSharedItem:
		return "shared_items"
	case ResourceSearch:
		return "search"
	}
	return ""
}

func (k ResourceKind) String() string {
	return k.pathSegment()
}

// typeName returns the value the service uses in "type" discriminators,
// e.g. "folder" inside an item reference.
func (k ResourceKind) typeName() string {
	s := k.pathSegment()
	if s == "" {
		return s
	}
	return s[:len(s)-1]
}

// Field selectors restrict which attributes the service includes in a
// response. Each resource gets its own string type so a selector for one
// resource cannot be passed where another resource is expected; the
// mismatch is a compile error rather than a runtime check.

// FolderField selects a folder attribute for the fields query parameter.
type FolderField string

const (
	FolderFieldName           FolderField = "name"
	FolderFieldDescription    FolderField = "description"
	FolderFieldSize           FolderField = "size"
	FolderFieldEtag           FolderField = "etag"
	FolderFieldParent         FolderField = "parent"
	FolderFieldSharedLink     FolderField = "shared_link"
	FolderFieldItemCollection FolderField = "item_collection"
	FolderFieldCreatedAt      FolderField = "created_at"
	FolderFieldModifiedAt     FolderField = "modified_at"
	FolderFieldOwnedBy        FolderField = "owned_by"
	FolderFieldFolderUploadEmail FolderField = "folder_upload_email"
)

// FileField selects a file attribute for the fields query parameter.
type FileField string

const (
	FileFieldName        FileField = "name"
	FileFieldDescription FileField = "description"
	FileFieldSize        FileField = "size"
	FileFieldEtag        FileField = "etag"
	FileFieldParent      FileField = "parent"
	FileFieldSharedLink  FileField = "shared_link"
	FileFieldSHA1        FileField = "sha1"
	FileFieldCreatedAt   FileField = "created_at"
	FileFieldModifiedAt  FileField = "modified_at"
	FileFieldVersionNumber FileField = "version_number"
)

// CommentField selects a comment attribute for the fields query parameter.
type CommentField string

const (
	CommentFieldMessage        CommentField = "message"
	CommentFieldIsReplyComment CommentField = "is_reply_comment"
	CommentFieldCreatedBy      CommentField = "created_by"
	CommentFieldCreatedAt      CommentField = "created_at"
	CommentFieldItem           CommentField = "item"
)

// DiscussionField selects a discussion attribute for the fields query parameter.
type DiscussionField string

const (
	DiscussionFieldName        DiscussionField = "name"
	DiscussionFieldDescription DiscussionField = "description"
	DiscussionFieldCreatedAt   DiscussionField = "created_at"
)

// CollaborationField selects a collaboration attribute for the fields query parameter.
type CollaborationField string

const (
	CollaborationFieldRole         CollaborationField = "role"
	CollaborationFieldStatus       CollaborationField = "status"
	CollaborationFieldAccessibleBy CollaborationField = "accessible_by"
	CollaborationFieldItem         CollaborationField = "item"
	CollaborationFieldExpiresAt    CollaborationField = "expires_at"
)

// UserField selects a user attribute for the fields query parameter.
type UserField string

const (
	UserFieldName        UserField = "name"
	UserFieldLogin       UserField = "login"
	UserFieldRole        UserField = "role"
	UserFieldLanguage    UserField = "language"
	UserFieldSpaceAmount UserField = "space_amount"
	UserFieldSpaceUsed   UserField = "space_used"
	UserFieldStatus      UserField = "status"
)

// EventField selects an event attribute for the fields query parameter.
type EventField string

const (
	EventFieldEventType EventField = "event_type"
	EventFieldSource    EventField = "source"
	EventFieldCreatedBy EventField = "created_by"
	EventFieldSessionID EventField = "session_id"
)

// fieldNames flattens a typed selector list into the plain strings the
// request builder joins into the fields parameter.
func fieldNames[F ~string](fields []F) []string {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return names
}
