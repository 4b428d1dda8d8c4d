package store

import (
	"context"
	"time"
)

// Keys used by the application's persisted state.
const (
	KeyComponentProgress = "circuitspace-component-progress"
	KeyProject           = "circuitspace-project"
	KeyUserProjects      = "circuitspace-user-projects"
)

// KV is a string key-value store. A missing key is reported with ok=false,
// never as an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
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
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM events grouped by model.
type LLMUsage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// QuizEventData captures one finished component quiz.
type QuizEventData struct {
	ComponentID      string
	Correct          int
	Total            int
	ExperienceGained int
	NewLevel         int
}

// QuizEventRecord is a stored quiz event.
type QuizEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	QuizEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// AppendQuizEvent records a finished quiz.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// QueryQuizEvents returns quiz events, newest first.
	QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error)

	// PurgeQuizEvents deletes the whole quiz history.
	PurgeQuizEvents(ctx context.Context) error
}
