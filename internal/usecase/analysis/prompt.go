package analysis

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// analysisPrompt is the canonical instruction template shared by every
// provider adapter. The transcript is embedded verbatim between the ---
// delimiters.
const analysisPrompt = `Analyze this meeting transcript and extract the following information.

IMPORTANT: You MUST respond with valid JSON only. No markdown, no code blocks, just pure JSON.

The JSON structure must be:
{
  "action_items": [
    {
      "task": "What needs to be done",
      "owner": "Who is responsible (use 'Unassigned' if not mentioned)",
      "deadline": "When it's due (use 'Not specified' if not mentioned)"
    }
  ],
  "open_points": [
    {
      "topic": "The unresolved issue or question",
      "context": "Why it remains open",
      "blocking": true or false
    }
  ],
  "follow_up_assessment": {
    "follow_up_needed": true or false,
    "reason": "Why a follow-up is or isn't needed",
    "suggested_topics": ["topic1", "topic2"]
  },
  "fruitfulness": {
    "score": 0-100,
    "verdict": "Fruitful" or "Partially Productive" or "Not Fruitful",
    "explanation": "Brief summary of why this score was given"
  }
}

Guidelines:
- action_items: Extract all tasks with clear ownership. Use "Unassigned" if no owner is mentioned.
- open_points: Topics discussed but NOT resolved. Set blocking=true if it blocks other work.
- follow_up_assessment: Determine if another meeting is needed based on open points and pending decisions.
- fruitfulness: Score based on decisions made, action items created, and issues resolved.
  - 80-100: Fruitful (clear decisions, good progress)
  - 50-79: Partially Productive (some progress, open items remain)
  - 0-49: Not Fruitful (no clear outcomes, wasted time)

TRANSCRIPT:
---
%s
---

Respond with ONLY the JSON object, no other text.`

// RenderPrompt renders the analysis instruction for one request. Pure
// function of its inputs: identical requests produce identical prompts.
// When any context field is present a "Context:" block is prepended, one
// line per field, in fixed order: booked duration, actual duration,
// expected attendees.
func RenderPrompt(req *entities.AnalysisRequest) string {
	prompt := fmt.Sprintf(analysisPrompt, req.Transcript)

	var contextParts []string
	if req.BookedDurationMinutes != nil {
		contextParts = append(contextParts, fmt.Sprintf("Meeting booked duration: %d minutes", *req.BookedDurationMinutes))
	}
	if req.ActualDurationMinutes != nil {
		contextParts = append(contextParts, fmt.Sprintf("Actual meeting duration: %d minutes", *req.ActualDurationMinutes))
	}
	if req.ExpectedAttendees != nil {
		contextParts = append(contextParts, fmt.Sprintf("Expected attendees: %d", *req.ExpectedAttendees))
	}

	if len(contextParts) > 0 {
		prompt = fmt.Sprintf("Context:\n%s\n\n%s", strings.Join(contextParts, "\n"), prompt)
	}

	return prompt
}
