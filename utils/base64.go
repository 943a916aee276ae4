package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

// DecodeImageDataURL parses a "data:image/...;base64,..." payload from the
// admin product form and returns the raw bytes plus content type.
func DecodeImageDataURL(s string) ([]byte, string, error) {
	if !strings.HasPrefix(s, "data:image/") {
		return nil, "", errors.New("invalid image format")
	}
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil, "", errors.New("invalid data url")
	}
	contentType := strings.TrimSuffix(strings.TrimPrefix(parts[0], "data:"), ";base64")
	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}
