package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MediaFile describes one uploaded asset.
type MediaFile struct {
	Filename string    `json:"filename"`
	Path     string    `json:"path"` // URL path for use in markdown
	Size     int64     `json:"size"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// mediaURLPath maps an upload filename to its public URL.
func mediaURLPath(filename string) string {
	return "/img/uploads/" + filename
}

// ListMediaFiles returns the uploads directory contents, creating it on
// first use.
func ListMediaFiles(uploadsDir string) ([]MediaFile, error) {
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, err
	}
	entries, err := readDirSorted(uploadsDir)
	if err != nil {
		return nil, err
	}

	files := make([]MediaFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, MediaFile{
			Filename: entry.Name(),
			Path:     mediaURLPath(entry.Name()),
			Size:     info.Size(),
			Created:  info.ModTime(),
			Modified: info.ModTime(),
		})
	}
	return files, nil
}

// SaveMediaFile stores an uploaded file under a timestamp-suffixed name so
// repeated uploads of the same asset never collide.
func SaveMediaFile(uploadsDir string, header *multipart.FileHeader) (*MediaFile, error) {
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	base := filepath.Base(header.Filename)
	base = strings.ReplaceAll(base, " ", "_")
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	filename := fmt.Sprintf("%s-%d%s", name, time.Now().UnixNano(), ext)

	fullPath := SafeJoin(uploadsDir, "", filename)
	if fullPath == "" {
		return nil, fmt.Errorf("%w: invalid media filename", ErrValidation)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	return &MediaFile{
		Filename: filename,
		Path:     mediaURLPath(filename),
		Size:     header.Size,
	}, nil
}

// DeleteMediaFile removes one uploaded asset by filename.
func DeleteMediaFile(uploadsDir, filename string) error {
	fullPath := SafeJoin(uploadsDir, "", filepath.Base(filename))
	if fullPath == "" {
		return fmt.Errorf("%w: invalid media filename", ErrValidation)
	}
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: media file", ErrNotFound)
		}
		return err
	}
	return nil
}
