package responses

import "github.com/goccy/go-json"

type Login struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user,omitempty"`
}

type Profile struct {
	User json.RawMessage `json:"user"`
}
