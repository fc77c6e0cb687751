package analysis

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

const fullResponse = `{
  "action_items": [
    {"task": "Send report", "owner": "Alice", "deadline": "Friday"}
  ],
  "open_points": [
    {"topic": "Budget", "context": "Awaiting finance input", "blocking": true}
  ],
  "follow_up_assessment": {
    "follow_up_needed": true,
    "reason": "Budget still open",
    "suggested_topics": ["budget", "headcount"]
  },
  "fruitfulness": {"score": 85, "verdict": "Fruitful", "explanation": "Clear decisions"}
}`

func TestNormalize_CleanJSON(t *testing.T) {
	n := NewNormalizer()

	result, err := n.Normalize(fullResponse)
	require.NoError(t, err)

	require.Len(t, result.ActionItems, 1)
	assert.Equal(t, "Send report", result.ActionItems[0].Task)
	assert.Equal(t, "Alice", result.ActionItems[0].Owner)
	assert.Equal(t, "Friday", result.ActionItems[0].Deadline)

	require.Len(t, result.OpenPoints, 1)
	assert.True(t, result.OpenPoints[0].Blocking)

	assert.True(t, result.FollowUpAssessment.FollowUpNeeded)
	assert.Equal(t, []string{"budget", "headcount"}, result.FollowUpAssessment.SuggestedTopics)

	assert.Equal(t, 85, result.Fruitfulness.Score)
	assert.Equal(t, entities.VerdictFruitful, result.Fruitfulness.Verdict)
}

func TestNormalize_ProseWrappedJSON(t *testing.T) {
	n := NewNormalizer()
	raw := `Sure! Here you go: {"action_items":[],"open_points":[],"follow_up_assessment":{"follow_up_needed":false,"reason":"x","suggested_topics":[]},"fruitfulness":{"score":10,"verdict":"Not Fruitful","explanation":"y"}}`

	result, err := n.Normalize(raw)
	require.NoError(t, err)

	assert.Empty(t, result.ActionItems)
	assert.Equal(t, 10, result.Fruitfulness.Score)
	assert.Equal(t, entities.VerdictNotFruitful, result.Fruitfulness.Verdict)
	assert.Equal(t, "x", result.FollowUpAssessment.Reason)
}

func TestNormalize_MarkdownFencedJSON(t *testing.T) {
	n := NewNormalizer()
	raw := "```json\n{\"fruitfulness\":{\"score\":42,\"verdict\":\"Not Fruitful\",\"explanation\":\"meh\"}}\n```"

	result, err := n.Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, 42, result.Fruitfulness.Score)
}

func TestNormalize_NotJSON(t *testing.T) {
	n := NewNormalizer()

	_, err := n.Normalize("not json at all")
	require.Error(t, err)

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_PARSE, appErr.Code)
}

func TestNormalize_NullReply(t *testing.T) {
	n := NewNormalizer()

	_, err := n.Normalize("null")
	require.Error(t, err)

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_PARSE, appErr.Code)
}

func TestNormalize_MissingFruitfulness(t *testing.T) {
	n := NewNormalizer()

	result, err := n.Normalize(`{"action_items":[]}`)
	require.NoError(t, err)

	assert.Equal(t, entities.Fruitfulness{
		Score:       0,
		Verdict:     "Unable to analyze",
		Explanation: "Analysis failed",
	}, result.Fruitfulness)
}

func TestNormalize_MissingFollowUpAssessment(t *testing.T) {
	n := NewNormalizer()

	result, err := n.Normalize(`{"action_items":[]}`)
	require.NoError(t, err)

	assert.Equal(t, entities.FollowUpAssessment{
		FollowUpNeeded:  false,
		Reason:          "Unable to determine",
		SuggestedTopics: []string{},
	}, result.FollowUpAssessment)
}

func TestNormalize_ActionItemSentinels(t *testing.T) {
	n := NewNormalizer()

	result, err := n.Normalize(`{"action_items":[{"task":"Send report"}]}`)
	require.NoError(t, err)

	require.Len(t, result.ActionItems, 1)
	assert.Equal(t, entities.OwnerUnassigned, result.ActionItems[0].Owner)
	assert.Equal(t, entities.DeadlineNotSpecified, result.ActionItems[0].Deadline)
}

func TestNormalize_TasklessActionItemDropped(t *testing.T) {
	n := NewNormalizer()

	result, err := n.Normalize(`{"action_items":[{"owner":"Bob"},{"task":"Keep me"},42]}`)
	require.NoError(t, err)

	require.Len(t, result.ActionItems, 1)
	assert.Equal(t, "Keep me", result.ActionItems[0].Task)
}

func TestNormalize_ActionItemsNotAList(t *testing.T) {
	n := NewNormalizer()

	result, err := n.Normalize(`{"action_items":"nope"}`)
	require.NoError(t, err)
	assert.Empty(t, result.ActionItems)
	assert.NotNil(t, result.ActionItems)
}

func TestNormalize_NonBooleanBlocking(t *testing.T) {
	n := NewNormalizer()

	result, err := n.Normalize(`{"open_points":[{"topic":"a","context":"b","blocking":"yes"},{"topic":"c","context":"d"}]}`)
	require.NoError(t, err)

	require.Len(t, result.OpenPoints, 2)
	assert.False(t, result.OpenPoints[0].Blocking)
	assert.False(t, result.OpenPoints[1].Blocking)
}

func TestNormalize_FloatScore(t *testing.T) {
	n := NewNormalizer()

	result, err := n.Normalize(`{"fruitfulness":{"score":85.0,"verdict":"Fruitful","explanation":"x"}}`)
	require.NoError(t, err)
	assert.Equal(t, 85, result.Fruitfulness.Score)
}

func TestNormalize_OutOfRangeScorePassesThrough(t *testing.T) {
	n := NewNormalizer()

	result, err := n.Normalize(`{"fruitfulness":{"score":140,"verdict":"Overachieving","explanation":"x"}}`)
	require.NoError(t, err)
	assert.Equal(t, 140, result.Fruitfulness.Score)
	assert.Equal(t, "Overachieving", result.Fruitfulness.Verdict)
}

func TestNormalize_NilSuggestedTopicsBecomesEmpty(t *testing.T) {
	n := NewNormalizer()

	result, err := n.Normalize(`{"follow_up_assessment":{"follow_up_needed":true,"reason":"x"}}`)
	require.NoError(t, err)
	assert.NotNil(t, result.FollowUpAssessment.SuggestedTopics)
	assert.Empty(t, result.FollowUpAssessment.SuggestedTopics)
}
