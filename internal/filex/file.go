package filex

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

// ReadImage loads an image file from disk and determines its MIME type,
// first from the extension and then by sniffing the content. Returns the
// base name, the content type, and the raw bytes.
func ReadImage(path string) (string, string, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", nil, fmt.Errorf("reading %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return filepath.Base(path), contentType, data, nil
}
