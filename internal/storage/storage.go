package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"
)

// BlobStore uploads a file and returns its publicly retrievable URL.
type BlobStore interface {
	Upload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

// objectName prefixes the file name with the current unix-millis timestamp
// so repeated uploads of the same file never collide.
func objectName(fileName string) string {
	base := filepath.Base(fileName)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), base)
}

func contentTypeFor(fileName string) string {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return contentType
}
