package store

import (
	"context"
	"time"
)

// ResultRecord is one immutable completed-test outcome, serialized into the
// ledger snapshot's history and mirrored as an append-only ResultEvent row.
type ResultRecord struct {
	ID            string `json:"id"`
	ModuleID      string `json:"moduleId"`
	TestID        string `json:"testId"`
	Score         int    `json:"score"`
	TimeSpent     int    `json:"timeSpent"`
	TestType      string `json:"testType"`
	Date          string `json:"date"`
	Timestamp     int64  `json:"timestamp"`
	AutoSubmitted bool   `json:"autoSubmitted,omitempty"`
}

// ModuleProgress tracks completion state for one study module.
type ModuleProgress struct {
	Completed []string `json:"completed"`
	Scores    []int    `json:"scores"`
	Progress  int      `json:"progress"`
}

// LedgerSnapshot is the full serialized progress ledger. TotalScore is a
// running arithmetic mean, not a sum; History is newest-first.
type LedgerSnapshot struct {
	Version    int                       `json:"version"`
	TotalTests int                       `json:"totalTests"`
	TotalScore float64                   `json:"totalScore"`
	TimeSpent  int                       `json:"timeSpent"`
	Modules    map[string]ModuleProgress `json:"modules"`
	History    []ResultRecord            `json:"history"`
}

// Snapshot represents a point-in-time capture of the progress ledger.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      LedgerSnapshot
}

// SnapshotRepo manages ledger snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ResultEventData captures one completed test attempt for the event log.
type ResultEventData struct {
	ResultID      string
	ModuleID      string
	TestID        string
	TestType      string
	Score         int
	TimeSpentSecs int
	AutoSubmitted bool
	SubmittedAtMs int64
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is one logged LLM call row.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates logged LLM calls for one purpose or model.
type LLMUsageStat struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendResult records a completed test attempt and returns the
	// global sequence number assigned to the event.
	AppendResult(ctx context.Context, data ResultEventData) (int64, error)

	// ListResults returns up to limit result events, newest submission first.
	// limit <= 0 means no limit.
	ListResults(ctx context.Context, limit int) ([]ResultEventData, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns up to limit LLM call events, newest first.
	// limit <= 0 means no limit.
	ListLLMRequests(ctx context.Context, limit int) ([]LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageStat, error)
}

// ProfileData is the local account record. Credentials are never stored.
type ProfileData struct {
	FirstName    string
	LastName     string
	Email        string
	Plan         string
	RegisteredAt time.Time
}

// ProfileRepo manages the single local profile.
type ProfileRepo interface {
	// Save creates or replaces the profile.
	Save(ctx context.Context, p ProfileData) error

	// Get returns the profile, or nil if none has been created.
	Get(ctx context.Context) (*ProfileData, error)
}
