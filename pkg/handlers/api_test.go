package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docs-admin/pkg/config"
	"docs-admin/pkg/services"
)

func writeSidebarDoc(t *testing.T, dir, name string, position int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	data, err := services.EncodeFrontMatter(map[string]interface{}{
		"title":            name,
		"sidebar_position": position,
	}, "body of "+name, services.FormatYAML)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestDocsLifecycle(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/docs", token, gin.H{
		"title":    "Getting Started",
		"content":  "# Welcome",
		"category": "guides",
		"position": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeBody(t, w)
	assert.Equal(t, "guides/getting-started.md", created["filePath"])

	w = doJSON(t, r, http.MethodGet, "/api/admin/docs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "guides-getting-started", docs[0]["id"])
	assert.Equal(t, "Getting Started", docs[0]["title"])

	w = doJSON(t, r, http.MethodPut, "/api/admin/docs/guides-getting-started", token, gin.H{
		"title":    "Getting Started v2",
		"content":  "updated",
		"position": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/docs/guides-getting-started", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, err := os.Stat(filepath.Join(config.DocsDir(), "guides", "getting-started.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestCreateDocMissingTitle(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/docs", token, gin.H{"content": "body"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateDocNotFound(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/admin/docs/missing", token, gin.H{
		"title":   "T",
		"content": "b",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMoveDocPosition(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	guides := filepath.Join(config.DocsDir(), "guides")
	writeSidebarDoc(t, guides, "a.md", 1)
	writeSidebarDoc(t, guides, "b.md", 2)

	w := doJSON(t, r, http.MethodPost, "/api/admin/docs/move-position", token, gin.H{
		"filePath":  "guides/b.md",
		"direction": "up",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["newPosition"])
}

func TestMoveDocPositionRequiresFilePath(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/docs/move-position", token, gin.H{
		"direction": "up",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "File path is required", decodeBody(t, w)["error"])
}

func TestMoveDocPositionRejectsTraversal(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/docs/move-position", token, gin.H{
		"filePath":  "../outside.md",
		"direction": "up",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid file path", decodeBody(t, w)["error"])
}

func TestMoveDocPositionAtBoundary(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	writeSidebarDoc(t, config.DocsDir(), "only.md", 1)

	w := doJSON(t, r, http.MethodPost, "/api/admin/docs/move-position", token, gin.H{
		"filePath":  "only.md",
		"direction": "up",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryLifecycle(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/categories", token, gin.H{
		"name":        "Getting Started",
		"description": "first steps",
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeBody(t, w)
	category := created["category"].(map[string]interface{})
	assert.Equal(t, "getting-started", category["id"])

	w = doJSON(t, r, http.MethodGet, "/api/admin/categories", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decodeBody(t, w)
	assert.NotEmpty(t, listed["categories"])

	w = doJSON(t, r, http.MethodDelete, "/api/admin/categories/getting-started", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "getting-started", decodeBody(t, w)["categoryId"])
}

func TestDeleteCategoryWithDocuments(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	guides := filepath.Join(config.DocsDir(), "guides")
	writeSidebarDoc(t, guides, "intro.md", 1)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/categories/guides", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["documentCount"])

	// The category and its document survive the refused delete.
	_, err := os.Stat(filepath.Join(guides, "intro.md"))
	assert.NoError(t, err)
}

func TestCategoryMoveBoundaryReportsNotMoved(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	_, err := services.CreateCategory(config.DocsDir(), "Only One", "")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/admin/categories/move-position", token, gin.H{
		"categoryId": "only-one",
		"direction":  "up",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["moved"])
	assert.Equal(t, "Category is already at the top", body["message"])
}

func TestMediaUploadAndDelete(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "logo image.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	filename, _ := body["filename"].(string)
	require.NotEmpty(t, filename)
	// Spaces are normalized away in stored filenames.
	assert.NotContains(t, filename, " ")

	w2 := doJSON(t, r, http.MethodDelete, "/api/admin/media/"+filename, token, nil)
	require.Equal(t, http.StatusOK, w2.Code)

	_, statErr := os.Stat(filepath.Join(config.UploadsDir(), filename))
	assert.True(t, os.IsNotExist(statErr))
}

func TestUploadMediaWithoutFile(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", decodeBody(t, w)["error"])
}

func TestSettingsRoundTripOverHTTP(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/admin/settings", token, gin.H{
		"title":   "Docs Portal",
		"tagline": "All the docs",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/settings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Docs Portal", body["title"])

	// The renderer config regenerates on every save.
	_, err := os.Stat(filepath.Join(config.AdminDataDir(), services.SiteConfigFile))
	assert.NoError(t, err)
}

func TestAuthorsOverHTTP(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	require.NoError(t, os.MkdirAll(filepath.Dir(config.AuthorsFile()), 0o755))

	w := doJSON(t, r, http.MethodPost, "/api/admin/authors", token, gin.H{
		"name":  "Jane Doe",
		"title": "Maintainer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/authors", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body, "jane_doe")
}
