package entities

// Sentinel defaults substituted when the LLM omits a field
const (
	OwnerUnassigned      = "Unassigned"
	DeadlineNotSpecified = "Not specified"
)

// Verdict labels produced by the scoring guidance. The model may return any
// text here; callers must not assume this set is exhaustive.
const (
	VerdictFruitful            = "Fruitful"
	VerdictPartiallyProductive = "Partially Productive"
	VerdictNotFruitful         = "Not Fruitful"
)

// AnalysisRequest carries one transcript plus optional meeting metadata
type AnalysisRequest struct {
	Transcript            string
	BookedDurationMinutes *int
	ActualDurationMinutes *int
	ExpectedAttendees     *int
	Model                 string // model selector, default applied when empty
}

// ActionItem represents a task extracted from the transcript
type ActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

// OpenPoint represents a topic discussed but not resolved
type OpenPoint struct {
	Topic    string `json:"topic"`
	Context  string `json:"context"`
	Blocking bool   `json:"blocking"`
}

// FollowUpAssessment states whether another meeting is needed and why
type FollowUpAssessment struct {
	FollowUpNeeded  bool     `json:"follow_up_needed"`
	Reason          string   `json:"reason"`
	SuggestedTopics []string `json:"suggested_topics"`
}

// Fruitfulness scores how productive the meeting was
type Fruitfulness struct {
	Score       int    `json:"score"`
	Verdict     string `json:"verdict"`
	Explanation string `json:"explanation"`
}

// MeetingAnalysis is the complete structured analysis of one transcript.
// Built fresh per request and discarded after the response is returned.
type MeetingAnalysis struct {
	ActionItems        []ActionItem       `json:"action_items"`
	OpenPoints         []OpenPoint        `json:"open_points"`
	FollowUpAssessment FollowUpAssessment `json:"follow_up_assessment"`
	Fruitfulness       Fruitfulness       `json:"fruitfulness"`
	ModelUsed          string             `json:"model_used"`
	// TimeDifference is booked minus actual duration in minutes, present
	// only when both durations were supplied in the request.
	TimeDifference *int `json:"timeDifference,omitempty"`
}

// AnalysisPrompt is the prompt-only mode result: the rendered instruction
// text for callers who forward it to an LLM of their own choosing
type AnalysisPrompt struct {
	Prompt       string `json:"prompt"`
	Instructions string `json:"instructions"`
}
