package utils

import (
	"superadmin-service/internal/pkg/dto/requests"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLoginRequest(t *testing.T) {
	request := &requests.Login{Email: "  ADMIN@Example.COM  ", Password: "  keep spaces  "}

	SanitizeLoginRequest(request)

	assert.Equal(t, "admin@example.com", request.Email, "email should be lowercase and trimmed")
	assert.Equal(t, "  keep spaces  ", request.Password, "password must not be touched")
}

func TestSanitizeCreateServicePackageRequest(t *testing.T) {
	t.Run("Trims lists and drops blank entries", func(t *testing.T) {
		request := &requests.CreateServicePackage{
			PackageID:     "  pkg-1  ",
			Name:          " Full Body ",
			TestsIncluded: []string{"  CBC  ", "   ", "Lipid Profile"},
			Tags:          []string{},
		}

		SanitizeCreateServicePackageRequest(request)

		assert.Equal(t, "pkg-1", request.PackageID)
		assert.Equal(t, "Full Body", request.Name)
		assert.Equal(t, []string{"CBC", "Lipid Profile"}, request.TestsIncluded)
		assert.Equal(t, []string{}, request.Tags, "empty list should remain empty")
		assert.Nil(t, request.ServicesIncluded, "missing list should stay missing")
	})
}

func TestSanitizeContentValue(t *testing.T) {
	var content interface{}
	require.NoError(t, json.Unmarshal([]byte(`[
		{"title": "<b>Tips</b><script>alert(1)</script>", "order": 1, "tags": ["<img src=x onerror=alert(1)>"]},
		"plain"
	]`), &content))

	sanitized := SanitizeContentValue(content).([]interface{})

	first := sanitized[0].(map[string]interface{})
	assert.Equal(t, "<b>Tips</b>", first["title"])
	assert.Equal(t, float64(1), first["order"])
	tags := first["tags"].([]interface{})
	require.Len(t, tags, 1)
	assert.NotContains(t, tags[0], "onerror")
	assert.Equal(t, "plain", sanitized[1])
}
