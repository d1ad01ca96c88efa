package drills

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	KindFreeformZH = "freeform_zh"

	SourceLocalBank = "local_bank"
	SourceGenerated = "generated"
)

// Challenge is one sampled two-step connective exercise. Spec holds the full
// sampled bundle and is never rewritten after creation.
type Challenge struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Difficulty        string         `gorm:"column:difficulty;not null;index:idx_challenge_difficulty_created,priority:1" json:"difficulty"`
	Kind              string         `gorm:"column:kind;not null" json:"kind"`
	Source            string         `gorm:"column:source;not null" json:"source"`
	SeedZH            string         `gorm:"column:seed_zh;type:text;not null" json:"seed_zh"`
	SeedEN            string         `gorm:"column:seed_en;type:text" json:"seed_en,omitempty"`
	ChallengeZH       string         `gorm:"column:challenge_zh;type:text;not null" json:"challenge_zh"`
	ChallengeEN       string         `gorm:"column:challenge_en;type:text" json:"challenge_en"`
	SummaryEN         string         `gorm:"column:summary_en;type:text" json:"summary_en"`
	ReferenceAnswerZH string         `gorm:"column:reference_answer_zh;type:text;not null" json:"reference_answer_zh"`
	ChainID           string         `gorm:"column:chain_id;index" json:"chain_id"`
	SceneID           string         `gorm:"column:scene_id" json:"scene_id"`
	Step1PatternID    string         `gorm:"column:step1_pattern_id" json:"step1_pattern_id"`
	Step2PatternID    string         `gorm:"column:step2_pattern_id" json:"step2_pattern_id"`
	Spec              datatypes.JSON `gorm:"column:spec" json:"spec"`
	CreatedAt         time.Time      `gorm:"not null;index:idx_challenge_difficulty_created,priority:2" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Challenge) TableName() string { return "challenge" }

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
