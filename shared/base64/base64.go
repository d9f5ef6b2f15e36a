package base64

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const marker = ";base64,"

func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode returns the raw bytes of a data-URL encoded file.
func Decode(file string) ([]byte, error) {
	idx := strings.Index(file, marker)
	if idx == -1 {
		return nil, fmt.Errorf("not a base64 data URL")
	}

	payload := file[idx+len(marker):]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return data, nil
}
