package requests

import "github.com/goccy/go-json"

type ListCMSContents struct {
	ContentType string `validate:"omitempty,content_type"`
	IsActive    *bool
}

type CreateCMSContent struct {
	ContentType string          `json:"contentType" validate:"required,content_type"`
	Content     json.RawMessage `json:"content" validate:"required"`
	IsActive    *bool           `json:"isActive,omitempty"`
}

type UpdateCMSContent struct {
	Content  json.RawMessage `json:"content,omitempty"`
	IsActive *bool           `json:"isActive,omitempty"`
}
