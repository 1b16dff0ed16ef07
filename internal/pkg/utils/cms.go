package utils

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
)

var ErrContentNotArray = errors.New("content is not a JSON array")

// NormalizeCMSContent checks that content is a JSON array and returns it
// re-encoded with every string sanitized.
func NormalizeCMSContent(content []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrContentNotArray
	}

	var items []interface{}
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, err
	}

	sanitized, err := json.Marshal(SanitizeContentValue(items))
	if err != nil {
		return nil, err
	}
	return sanitized, nil
}
