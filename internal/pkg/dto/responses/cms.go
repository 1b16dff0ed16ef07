package responses

import "github.com/goccy/go-json"

type CMSContent struct {
	ID          string          `json:"_id"`
	ContentType string          `json:"contentType"`
	Content     json.RawMessage `json:"content"`
	IsActive    bool            `json:"isActive"`
	UpdatedAt   string          `json:"updatedAt,omitempty"`
}
