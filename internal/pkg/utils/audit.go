package utils

import (
	"context"
	"strings"
	"superadmin-service/internal/pkg/dto/requests"

	"github.com/tidwall/gjson"
)

func NewAuditEvent(ctx context.Context, event, resourceID string, attributes map[string]any) requests.AuditEvent {
	return requests.AuditEvent{
		Event:      event,
		AdminID:    GetAdminID(ctx),
		ResourceID: resourceID,
		Attributes: attributes,
	}
}

var recordIDKeys = []string{"_id", "id"}

// ExtractRecordID reads the id of a record returned as raw JSON, looking one
// level down when the record is wrapped under a single key.
func ExtractRecordID(raw []byte) string {
	if !gjson.ValidBytes(raw) {
		return ""
	}
	record := gjson.ParseBytes(raw)
	if !record.IsObject() {
		return ""
	}
	for _, key := range recordIDKeys {
		value := record.Get(key)
		if value.Type == gjson.String && strings.TrimSpace(value.Str) != "" {
			return value.Str
		}
	}
	if fields := record.Map(); len(fields) == 1 {
		for _, nested := range fields {
			return ExtractRecordID([]byte(nested.Raw))
		}
	}
	return ""
}
