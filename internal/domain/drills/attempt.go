package drills

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Attempt struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ChallengeID uuid.UUID  `gorm:"type:uuid;not null;index:idx_attempt_challenge_created,priority:1" json:"challenge_id"`
	Challenge   *Challenge `gorm:"constraint:OnDelete:CASCADE;foreignKey:ChallengeID;references:ID" json:"-"`
	Answer      string     `gorm:"column:answer;type:text;not null" json:"answer"`
	Score       float64    `gorm:"column:score;not null" json:"score"`
	Pass        bool       `gorm:"column:pass;not null" json:"pass"`
	Explanation string     `gorm:"column:explanation;type:text" json:"explanation"`
	CreatedAt   time.Time  `gorm:"not null;index:idx_attempt_challenge_created,priority:2" json:"created_at"`
}

func (Attempt) TableName() string { return "attempt" }

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
