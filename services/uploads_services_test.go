package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedFileType(t *testing.T) {
	testCases := []struct {
		mimetype string
		want     bool
	}{
		{"application/pdf", true},
		{"image/png", true},
		{"application/zip", true},
		{"text/plain", true},
		{"video/mp4", false},
		{"application/x-msdownload", false},
		{"", false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, AllowedFileType(tc.mimetype), tc.mimetype)
	}
}

func TestFileURL(t *testing.T) {
	url := FileURL("https", "api.example.com", "file-1700000000000-42.pdf")
	assert.Equal(t, "https://api.example.com/uploads/file-1700000000000-42.pdf", url)
}
