package dto

import "time"

type AuditLogResponse struct {
	ID        int                    `json:"id"`
	UserID    *int                   `json:"user_id,omitempty"`
	Username  string                 `json:"username,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
