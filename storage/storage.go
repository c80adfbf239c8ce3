package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists uploaded evidence files. Save returns the path recorded on
// the report; Delete removes a previously saved file.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}

// Extensions accepted for evidence uploads.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
}

// IsAllowedExtension reports whether the file name carries an accepted
// photo or video extension.
func IsAllowedExtension(fileName string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(fileName))]
}

// EvidenceKey generates a collision-free storage key for an uploaded file.
// Concurrent uploads with identical client file names never overwrite each
// other.
func EvidenceKey(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("evidence/%s%s", uuid.New().String(), ext)
}
