package wizard

import (
	"net/url"
	"strings"
)

const dataImagePrefix = "data:image/"

// IsLogoReference accepts an absolute http(s) URL with a host, or an inline
// data:image/ URI carrying a payload.
func IsLogoReference(value string) bool {
	if len(value) >= len(dataImagePrefix) && strings.EqualFold(value[:len(dataImagePrefix)], dataImagePrefix) {
		mediaType, payload, ok := strings.Cut(value[len(dataImagePrefix):], ",")
		return ok && mediaType != "" && payload != ""
	}

	parsed, err := url.Parse(value)
	if err != nil || parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	}
	return false
}
