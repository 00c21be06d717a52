package services

import (
	"errors"
	"fmt"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"api/config"
	"api/metrics"
)

var (
	ErrFileTooLarge        = errors.New("file exceeds the 10MB limit")
	ErrUnsupportedFileType = errors.New("file type not supported")
)

// Accepted upload types: documents, images, archives and code. Anything
// not listed is rejected.
var allowedMimeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"text/plain",
	"text/markdown",
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/svg+xml",
	"image/webp",
	"application/zip",
	"application/x-zip-compressed",
	"application/x-7z-compressed",
	"application/gzip",
	"application/json",
	"text/javascript",
	"text/html",
	"text/css",
	"application/xml",
	"application/octet-stream",
}

// AllowedFileType reports whether the mimetype is acceptable for upload
func AllowedFileType(mimetype string) bool {
	for _, allowed := range allowedMimeTypes {
		if mimetype == allowed {
			return true
		}
	}
	return false
}

// StoreUpload validates and writes an uploaded file into the upload
// directory under a collision-resistant name, returning the stored
// filename. Files left behind by requests that later fail are not cleaned
// up.
func StoreUpload(file *multipart.FileHeader) (string, error) {
	if file.Size > config.MaxUploadSize {
		return "", ErrFileTooLarge
	}
	if !AllowedFileType(file.Header.Get("Content-Type")) {
		return "", ErrUnsupportedFileType
	}

	if err := os.MkdirAll(config.UploadDir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".unknown"
	}
	name := fmt.Sprintf("file-%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(config.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", err
	}

	metrics.UploadedFiles.Inc()
	return name, nil
}

// FileURL builds the public URL of a stored upload from the request host
func FileURL(scheme, host, filename string) string {
	return fmt.Sprintf("%s://%s/uploads/%s", scheme, host, filename)
}
