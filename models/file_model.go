package models

import (
	"time"

	"gorm.io/gorm"
)

// FileLog keeps the names of CSV drops the processor has already
// imported so a file is never imported twice.
type FileLog struct {
	gorm.Model
	Filename     string `gorm:"unique;not null"`
	DateModified time.Time
}
