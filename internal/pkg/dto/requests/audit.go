package requests

import "time"

type AuditEvent struct {
	Event      string         `json:"event"`
	AdminID    string         `json:"adminId,omitempty"`
	ResourceID string         `json:"resourceId,omitempty"`
	RequestID  string         `json:"requestId,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
	Attributes map[string]any `json:"attributes,omitempty"`
}
