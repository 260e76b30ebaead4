package models

// AuditLog records ledger mutations for later inspection.
type AuditLog struct {
	Base
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   uint   `json:"resource_id"`
	Changes      string `json:"changes,omitempty"`
}
