package analysis

import (
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// AnalyzeRequest is the request body for POST /v1/analyze and
// POST /v1/analyze/prompt
type AnalyzeRequest struct {
	Transcript            string `json:"transcript" validate:"required"`
	BookedDurationMinutes *int   `json:"meeting_booked_duration,omitempty" validate:"omitempty,gt=0"`
	ActualDurationMinutes *int   `json:"meeting_duration_minutes,omitempty" validate:"omitempty,gt=0"`
	ExpectedAttendees     *int   `json:"expected_attendees,omitempty" validate:"omitempty,gt=0"`
	Model                 string `json:"model,omitempty"`
}

// ToEntity converts the DTO into the domain request
func (r *AnalyzeRequest) ToEntity() *entities.AnalysisRequest {
	return &entities.AnalysisRequest{
		Transcript:            r.Transcript,
		BookedDurationMinutes: r.BookedDurationMinutes,
		ActualDurationMinutes: r.ActualDurationMinutes,
		ExpectedAttendees:     r.ExpectedAttendees,
		Model:                 r.Model,
	}
}
