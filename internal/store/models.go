package store

import (
	"time"

	"gorm.io/gorm"
)

// llmRequestEvent is the persisted row of one LLM API call.
type llmRequestEvent struct {
	ID           int       `gorm:"primaryKey;autoIncrement"`
	Sequence     int64     `gorm:"uniqueIndex;not null"`
	Timestamp    time.Time `gorm:"not null"`
	SessionID    string    `gorm:"index;not null;default:''"`
	Provider     string    `gorm:"index;not null"`
	Model        string    `gorm:"not null"`
	Purpose      string    `gorm:"index;not null"`
	InputTokens  int       `gorm:"not null;default:0"`
	OutputTokens int       `gorm:"not null;default:0"`
	LatencyMs    int64     `gorm:"not null;default:0"`
	Success      bool      `gorm:"not null"`
	ErrorMessage string    `gorm:"not null;default:''"`
	RequestBody  string    `gorm:"not null;default:''"`
	ResponseBody string    `gorm:"not null;default:''"`
}

func (llmRequestEvent) TableName() string {
	return "llm_request_events"
}

func (e llmRequestEvent) toEvent() LLMEvent {
	return LLMEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			SessionID:    e.SessionID,
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}

// globalSequence holds the single counter row behind event sequences.
type globalSequence struct {
	ID      int   `gorm:"primaryKey;autoIncrement:false"`
	NextVal int64 `gorm:"not null;default:1"`
}

func (globalSequence) TableName() string {
	return "global_sequence"
}

// autoMigrate creates or updates the audit tables.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&llmRequestEvent{}, &globalSequence{})
}
