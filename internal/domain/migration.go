package domain

import "time"

// Migration is the schema bookkeeping row written once per migrated model.
type Migration struct {
	Name       string    `gorm:"type:varchar(255);primaryKey" json:"name"`
	ExecutedAt time.Time `gorm:"type:timestamp;not null" json:"executed_at"`
}

// TableName specifies the table name for Migration
func (Migration) TableName() string {
	return "migrations"
}
