package box

import (
	"encoding/json"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, desc *RequestDescriptor) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(desc.Body, &body))
	return body
}

func TestBuildGetRejectsEmptyID(t *testing.T) {
	kinds := []ResourceKind{
		ResourceFolder, ResourceFile, ResourceComment, ResourceDiscussion,
		ResourceCollaboration, ResourceUser,
	}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			desc, err := BuildGet(kind, "", nil)
			assert.Nil(t, desc)
			var argErr *ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, "id", argErr.Param)
		})
	}
}

func TestBuildGetFields(t *testing.T) {
	desc, err := BuildGet(ResourceFile, "123", []string{"name", "sha1"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, desc.Method)
	assert.Equal(t, "2.0/files/123", desc.Path)
	assert.Equal(t, "name,sha1", desc.Query.Get("fields"))

	// Without selectors the fields parameter is absent entirely, so the
	// service applies its own default attribute set.
	desc, err = BuildGet(ResourceFile, "123", nil)
	require.NoError(t, err)
	_, present := desc.Query["fields"]
	assert.False(t, present)
}

func TestBuildCreateFolder(t *testing.T) {
	desc, err := BuildCreate(ResourceFolder, "0", "test")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, desc.Method)
	assert.Equal(t, "2.0/folders", desc.Path)
	body := decodeBody(t, desc)
	assert.Equal(t, "test", body["name"])
	assert.Equal(t, map[string]any{"id": "0"}, body["parent"])
}

func TestBuildDeleteIfMatchAlwaysPresent(t *testing.T) {
	desc, err := BuildDelete(ResourceFile, "123", false, "")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, desc.Method)
	assert.Equal(t, "2.0/files/123", desc.Path)
	// The header must be present and empty, not absent: the service
	// treats those differently.
	vals, present := desc.Header["If-Match"]
	require.True(t, present)
	assert.Equal(t, []string{""}, vals)

	desc, err = BuildDelete(ResourceFile, "123", false, "etag123")
	require.NoError(t, err)
	assert.Equal(t, "etag123", desc.Header.Get("If-Match"))
}

func TestBuildDeleteRecursiveOnlyForFolders(t *testing.T) {
	desc, err := BuildDelete(ResourceFolder, "42", true, "")
	require.NoError(t, err)
	assert.Equal(t, "true", desc.Query.Get("recursive"))

	desc, err = BuildDelete(ResourceFile, "42", true, "")
	require.NoError(t, err)
	assert.Empty(t, desc.Query.Get("recursive"))
}

func TestBuildCopyNameOmittedWhenBlank(t *testing.T) {
	desc, err := BuildCopy(ResourceFolder, "11", "22", "")
	require.NoError(t, err)
	assert.Equal(t, "2.0/folders/11/copy", desc.Path)
	body := decodeBody(t, desc)
	_, present := body["name"]
	assert.False(t, present, "blank name must not reach the wire")
	assert.Equal(t, map[string]any{"id": "22"}, body["parent"])

	// Whitespace-only counts as blank too.
	desc, err = BuildCopy(ResourceFolder, "11", "22", "   ")
	require.NoError(t, err)
	_, present = decodeBody(t, desc)["name"]
	assert.False(t, present)

	desc, err = BuildCopy(ResourceFolder, "11", "22", "renamed")
	require.NoError(t, err)
	assert.Equal(t, "renamed", decodeBody(t, desc)["name"])
}

func TestBuildUpdateSparseBody(t *testing.T) {
	tests := []struct {
		name     string
		update   Update
		wantKeys []string
	}{
		{"description only", Update{Description: "x"}, []string{"description"}},
		{"name only", Update{Name: "n"}, []string{"name"}},
		{"parent and name", Update{Name: "n", ParentID: "9"}, []string{"name", "parent"}},
		{"shared link", Update{SharedLink: &SharedLink{Access: "open"}}, []string{"shared_link"}},
		{"message only", Update{Message: "hi"}, []string{"message"}},
		{"nothing set", Update{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := BuildUpdate(ResourceFile, "123", nil, tt.update)
			require.NoError(t, err)
			body := decodeBody(t, desc)
			assert.Len(t, body, len(tt.wantKeys))
			for _, k := range tt.wantKeys {
				assert.Contains(t, body, k)
			}
			// An unset attribute must never appear, not even as null.
			if tt.update.Name == "" {
				assert.NotContains(t, body, "name")
			}
		})
	}
}

func TestBuildUpdateEtagHeader(t *testing.T) {
	desc, err := BuildUpdate(ResourceFile, "123", nil, Update{Name: "n", Etag: "v5"})
	require.NoError(t, err)
	assert.Equal(t, "v5", desc.Header.Get("If-Match"))

	desc, err = BuildUpdate(ResourceFile, "123", nil, Update{Name: "n"})
	require.NoError(t, err)
	_, present := desc.Header["If-Match"]
	assert.False(t, present, "update without etag carries no If-Match slot")
}

func TestEnsureOffsetIsMultipleOfLimit(t *testing.T) {
	tests := []struct {
		limit, offset int
		ok            bool
	}{
		{0, 0, true},
		{1, 0, true},
		{2, 4, true},
		{2, 1, false},
		{2, 3, false},
	}
	for _, tt := range tests {
		err := EnsureOffsetIsMultipleOfLimit(tt.limit, tt.offset)
		if tt.ok {
			assert.NoError(t, err, "limit=%d offset=%d", tt.limit, tt.offset)
		} else {
			assert.ErrorIs(t, err, ErrInvalidPagination, "limit=%d offset=%d", tt.limit, tt.offset)
		}
	}
}

func TestBuildSearchValidatesPagination(t *testing.T) {
	desc, err := BuildSearch("tax documents", 2, 1)
	assert.Nil(t, desc)
	assert.ErrorIs(t, err, ErrInvalidPagination)

	desc, err = BuildSearch("tax documents", 2, 4)
	require.NoError(t, err)
	assert.Equal(t, "2.0/search", desc.Path)
	assert.Equal(t, "tax documents", desc.Query.Get("query"))
	assert.Equal(t, "2", desc.Query.Get("limit"))
	assert.Equal(t, "4", desc.Query.Get("offset"))
}

func TestBuildUploadMultipart(t *testing.T) {
	desc, err := BuildUpload("77", "report.pdf", []byte("content bytes"))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, desc.Method)
	assert.Equal(t, "2.0/files/content", desc.Path)

	mediaType, params, err := mime.ParseMediaType(desc.ContentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(strings.NewReader(string(desc.Body)), params["boundary"])
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"77"}, form.Value["folder_id"])
	require.Len(t, form.File["file"], 1)
	assert.Equal(t, "report.pdf", form.File["file"][0].Filename)
}

func TestBuildWriteMultipartWithIfMatch(t *testing.T) {
	desc, err := BuildWrite("123", "report.pdf", "", []byte("v2"))
	require.NoError(t, err)
	assert.Equal(t, "2.0/files/123/content", desc.Path)
	vals, present := desc.Header["If-Match"]
	require.True(t, present)
	assert.Equal(t, []string{""}, vals)
}

func TestBuildReadIsRaw(t *testing.T) {
	desc, err := BuildRead("123")
	require.NoError(t, err)
	assert.True(t, desc.Raw)
	assert.Equal(t, "2.0/files/123/content", desc.Path)

	_, err = BuildRead("")
	var argErr *ArgumentError
	assert.True(t, errors.As(err, &argErr))
}

func TestBuildSharedItemHeader(t *testing.T) {
	desc, err := BuildSharedItem("https://app.box.com/s/abc", "pw", nil)
	require.NoError(t, err)
	assert.Equal(t, "2.0/shared_items", desc.Path)
	header := desc.Header.Get("BoxApi")
	assert.Contains(t, header, "shared_link=")
	assert.Contains(t, header, "shared_link_password=pw")
}

func TestBuildAddCollaboration(t *testing.T) {
	desc, err := BuildAddCollaboration(ResourceFolder, "11", "", "sean@box.com", RoleEditor)
	require.NoError(t, err)
	body := decodeBody(t, desc)
	accessibleBy := body["accessible_by"].(map[string]any)
	assert.Equal(t, "sean@box.com", accessibleBy["login"])
	_, present := accessibleBy["id"]
	assert.False(t, present)

	_, err = BuildAddCollaboration(ResourceFolder, "11", "", "", RoleEditor)
	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
}

func TestBuildEvents(t *testing.T) {
	desc := BuildEvents(842, StreamTypeChanges, 50)
	assert.Equal(t, "842", desc.Query.Get("stream_position"))
	assert.Equal(t, "changes", desc.Query.Get("stream_type"))
	assert.Equal(t, "50", desc.Query.Get("limit"))
}
