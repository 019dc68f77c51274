package testplan

import "time"

// Record is the append-only audit row written for every generation, before
// the output is parsed.
type Record struct {
	ID              string    `json:"id" bson:"-"`
	InputContent    string    `json:"input_content" bson:"input_content"`
	GeneratedOutput string    `json:"generated_output" bson:"generated_output"`
	Timestamp       time.Time `json:"timestamp" bson:"timestamp"`
}

// Canonical task keys, in the order the prompt asks for them.
const (
	KeyTaskName    = "Task Name"
	KeyDescription = "Description"
	KeyStartDate   = "Start Date"
	KeyEndDate     = "End Date"
	KeyDuration    = "Duration (days)"
)

// CanonicalKeys lists the task keys that lead the spreadsheet columns.
var CanonicalKeys = []string{KeyTaskName, KeyDescription, KeyStartDate, KeyEndDate, KeyDuration}

// DefaultArtifactName is the fixed download name used unless unique
// artifact names are enabled.
const DefaultArtifactName = "test_plan.xlsx"

// XLSXContentType is served for spreadsheet downloads.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
