package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is a profile document keyed by the identity provider's stable user ID.
// Profile attributes stay zero-valued until setup completes.
type User struct {
	ID                  uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AuthID              string         `json:"authId" gorm:"uniqueIndex;not null"`
	Email               string         `json:"email" gorm:"uniqueIndex;not null"`
	Gender              string         `json:"gender" gorm:"not null;default:'empty'"`
	Height              float64        `json:"height"`
	Weight              float64        `json:"weight"`
	Age                 int            `json:"age"`
	Goals               datatypes.JSON `json:"goals" gorm:"type:jsonb"`
	OnboardingCompleted bool           `json:"onboardingCompleted" gorm:"not null;default:false"`
	Image               *string        `json:"image"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// ProfileSetup carries the attributes supplied together when onboarding completes.
type ProfileSetup struct {
	Gender string
	Height float64
	Weight float64
	Age    int
	Goals  []string
}
