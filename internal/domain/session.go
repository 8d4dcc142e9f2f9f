package domain

import (
	"time"

	"gorm.io/datatypes"
)

// SaunaSession is one completed sauna session. Records are append-only and never
// mutated after creation. UserID holds the owner's auth ID by value; there is no
// foreign key to users.
//
// The bigserial primary key doubles as the insertion-order tie-break when two
// sessions share a created_at.
type SaunaSession struct {
	ID              uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID          string         `json:"userId" gorm:"index;not null"`
	DurationSeconds int            `json:"durationSeconds" gorm:"not null"`
	TemperatureC    float64        `json:"temperatureC" gorm:"not null"`
	HumidityPercent float64        `json:"humidityPercent" gorm:"not null"`
	StartedAt       time.Time      `json:"startedAt" gorm:"not null"`
	StoppedAt       time.Time      `json:"stoppedAt" gorm:"not null"`
	Brief           string         `json:"brief"`
	AxisData        datatypes.JSON `json:"axis_data" gorm:"type:jsonb"`
	CreatedAt       time.Time      `json:"createdAt"`
}
