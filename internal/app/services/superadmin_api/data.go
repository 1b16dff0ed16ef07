package superadmin_api

import (
	"context"
	"net/url"
	"superadmin-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

func (c *Client) getData(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.sendData(ctx, constvars.MethodGet, path, query, nil)
}

func (c *Client) sendData(ctx context.Context, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	envelope, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
