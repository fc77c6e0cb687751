package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// Normalizer coerces raw LLM replies into MeetingAnalysis fields. Parsing is
// two-stage: an all-optional envelope first, then a pure defaulting pass, so
// the repair policy lives in one place.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer instance
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// rawEnvelope is the first-stage parse target. Every field is optional;
// sub-objects stay raw so one malformed section never fails the whole parse.
type rawEnvelope struct {
	ActionItems        json.RawMessage `json:"action_items"`
	OpenPoints         json.RawMessage `json:"open_points"`
	FollowUpAssessment json.RawMessage `json:"follow_up_assessment"`
	Fruitfulness       json.RawMessage `json:"fruitfulness"`
}

type rawActionItem struct {
	Task     *string `json:"task"`
	Owner    *string `json:"owner"`
	Deadline *string `json:"deadline"`
}

type rawOpenPoint struct {
	Topic    string          `json:"topic"`
	Context  string          `json:"context"`
	Blocking json.RawMessage `json:"blocking"`
}

type rawFollowUp struct {
	FollowUpNeeded  bool     `json:"follow_up_needed"`
	Reason          string   `json:"reason"`
	SuggestedTopics []string `json:"suggested_topics"`
}

type rawFruitfulness struct {
	Score       json.Number `json:"score"`
	Verdict     string      `json:"verdict"`
	Explanation string      `json:"explanation"`
}

// Normalize parses raw LLM output into MeetingAnalysis fields. A reply with
// no recoverable JSON object is a terminal ParseError; missing or malformed
// sub-fields inside a parseable object are repaired with fixed defaults
// instead of failing.
func (n *Normalizer) Normalize(raw string) (*entities.MeetingAnalysis, error) {
	env, err := n.parseEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return n.applyDefaults(env), nil
}

// parseEnvelope tries a strict parse of the full text, then of the substring
// from the first { to the last } (LLMs like to wrap JSON in prose or fences)
func (n *Normalizer) parseEnvelope(raw string) (*rawEnvelope, error) {
	// json.Unmarshal into a struct silently accepts "null", so only take the
	// strict path when the reply actually looks like an object
	var env rawEnvelope
	if trimmed := strings.TrimSpace(raw); strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal([]byte(trimmed), &env); err == nil {
			return &env, nil
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, errors.ErrParse(fmt.Errorf("no JSON object found in response"))
	}

	if err := json.Unmarshal([]byte(raw[start:end+1]), &env); err != nil {
		return nil, errors.ErrParse(fmt.Errorf("extracted candidate is not valid JSON: %w", err))
	}
	return &env, nil
}

// applyDefaults maps the raw envelope onto the strict result types, filling
// absent fields with the documented defaults and dropping malformed items
func (n *Normalizer) applyDefaults(env *rawEnvelope) *entities.MeetingAnalysis {
	return &entities.MeetingAnalysis{
		ActionItems:        n.normalizeActionItems(env.ActionItems),
		OpenPoints:         n.normalizeOpenPoints(env.OpenPoints),
		FollowUpAssessment: n.normalizeFollowUp(env.FollowUpAssessment),
		Fruitfulness:       n.normalizeFruitfulness(env.Fruitfulness),
	}
}

func (n *Normalizer) normalizeActionItems(raw json.RawMessage) []entities.ActionItem {
	items := make([]entities.ActionItem, 0)
	if len(raw) == 0 {
		return items
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		// Not a list at all; treat as empty rather than failing
		return items
	}

	for _, element := range elements {
		var item rawActionItem
		if err := json.Unmarshal(element, &item); err != nil {
			continue // malformed item, drop it
		}
		if item.Task == nil || *item.Task == "" {
			continue // an item without a task carries no signal
		}

		owner := entities.OwnerUnassigned
		if item.Owner != nil && *item.Owner != "" {
			owner = *item.Owner
		}
		deadline := entities.DeadlineNotSpecified
		if item.Deadline != nil && *item.Deadline != "" {
			deadline = *item.Deadline
		}

		items = append(items, entities.ActionItem{
			Task:     *item.Task,
			Owner:    owner,
			Deadline: deadline,
		})
	}
	return items
}

func (n *Normalizer) normalizeOpenPoints(raw json.RawMessage) []entities.OpenPoint {
	points := make([]entities.OpenPoint, 0)
	if len(raw) == 0 {
		return points
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return points
	}

	for _, element := range elements {
		var point rawOpenPoint
		if err := json.Unmarshal(element, &point); err != nil {
			continue
		}

		// blocking defaults to false when absent or non-boolean
		blocking := false
		if len(point.Blocking) > 0 {
			_ = json.Unmarshal(point.Blocking, &blocking)
		}

		points = append(points, entities.OpenPoint{
			Topic:    point.Topic,
			Context:  point.Context,
			Blocking: blocking,
		})
	}
	return points
}

func (n *Normalizer) normalizeFollowUp(raw json.RawMessage) entities.FollowUpAssessment {
	fallback := entities.FollowUpAssessment{
		FollowUpNeeded:  false,
		Reason:          "Unable to determine",
		SuggestedTopics: []string{},
	}
	if len(raw) == 0 {
		return fallback
	}

	var fu rawFollowUp
	if err := json.Unmarshal(raw, &fu); err != nil {
		return fallback
	}

	topics := fu.SuggestedTopics
	if topics == nil {
		topics = []string{}
	}
	return entities.FollowUpAssessment{
		FollowUpNeeded:  fu.FollowUpNeeded,
		Reason:          fu.Reason,
		SuggestedTopics: topics,
	}
}

func (n *Normalizer) normalizeFruitfulness(raw json.RawMessage) entities.Fruitfulness {
	fallback := entities.Fruitfulness{
		Score:       0,
		Verdict:     "Unable to analyze",
		Explanation: "Analysis failed",
	}
	if len(raw) == 0 {
		return fallback
	}

	var fr rawFruitfulness
	if err := json.Unmarshal(raw, &fr); err != nil {
		return fallback
	}

	// Scores outside 0-100 and non-canonical verdicts pass through as-is.
	// Models occasionally write the score as a float.
	score := 0
	if i, err := fr.Score.Int64(); err == nil {
		score = int(i)
	} else if f, err := fr.Score.Float64(); err == nil {
		score = int(f)
	}

	return entities.Fruitfulness{
		Score:       score,
		Verdict:     fr.Verdict,
		Explanation: fr.Explanation,
	}
}
