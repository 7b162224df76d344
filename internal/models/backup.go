package models

import "time"

// BackupDocument is the export/import file shape:
//
//	{ "content": {...}, "users": [...], "exportedAt": "2025-01-02T03:04:05Z" }
type BackupDocument struct {
	Content    *SiteContent `json:"content,omitempty"`
	Users      []Admin      `json:"users,omitempty"`
	ExportedAt time.Time    `json:"exportedAt"`
}
