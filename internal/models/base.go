package models

import "time"

// Base contains common columns for all tables. IDs are assigned by the
// database on insert and never change afterwards.
type Base struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
