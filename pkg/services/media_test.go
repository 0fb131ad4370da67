package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	_, header, err := req.FormFile("file")
	require.NoError(t, err)
	return header
}

func TestSaveMediaFile(t *testing.T) {
	uploads := t.TempDir()

	info, err := SaveMediaFile(uploads, uploadHeader(t, "site logo.png", "png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(info.Filename, "site_logo-"))
	assert.True(t, strings.HasSuffix(info.Filename, ".png"))
	assert.Equal(t, "/img/uploads/"+info.Filename, info.Path)
	assert.Equal(t, int64(len("png-bytes")), info.Size)

	data, err := os.ReadFile(filepath.Join(uploads, info.Filename))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSaveMediaFileUniqueNames(t *testing.T) {
	uploads := t.TempDir()

	first, err := SaveMediaFile(uploads, uploadHeader(t, "logo.png", "a"))
	require.NoError(t, err)
	second, err := SaveMediaFile(uploads, uploadHeader(t, "logo.png", "b"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}

func TestListMediaFilesCreatesDir(t *testing.T) {
	uploads := filepath.Join(t.TempDir(), "uploads")

	files, err := ListMediaFiles(uploads)
	require.NoError(t, err)
	assert.Empty(t, files)

	_, statErr := os.Stat(uploads)
	assert.NoError(t, statErr)
}

func TestDeleteMediaFile(t *testing.T) {
	uploads := t.TempDir()
	info, err := SaveMediaFile(uploads, uploadHeader(t, "logo.png", "a"))
	require.NoError(t, err)

	require.NoError(t, DeleteMediaFile(uploads, info.Filename))
	_, statErr := os.Stat(filepath.Join(uploads, info.Filename))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeleteMediaFileMissing(t *testing.T) {
	err := DeleteMediaFile(t.TempDir(), "nope.png")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMediaFileStripsPath(t *testing.T) {
	uploads := t.TempDir()
	// A path-qualified name only ever touches the uploads directory itself.
	err := DeleteMediaFile(uploads, "../../etc/passwd")
	require.ErrorIs(t, err, ErrNotFound)
}
