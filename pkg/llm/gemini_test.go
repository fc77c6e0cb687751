package llm

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-analyzer/errors"
)

func TestGeminiInvoke_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	c := NewGeminiClient("gemini-2.5-pro")
	_, err := c.Invoke(context.Background(), "analyze this", DefaultGenerationConfig())
	require.Error(t, err)

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_CONFIGURATION, appErr.Code)
	assert.Contains(t, appErr.Message, "GEMINI_API_KEY")
}

func TestGeminiInvoke_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"action_"},{"text":"items\":[]}"}]}}]}`))
	}))
	defer ts.Close()

	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_API_URL", ts.URL)

	c := NewGeminiClient("gemini-2.5-pro")
	reply, err := c.Invoke(context.Background(), "analyze this", DefaultGenerationConfig())
	require.NoError(t, err)

	// parts are concatenated in order
	assert.Equal(t, `{"action_items":[]}`, reply)
	assert.Equal(t, "/gemini-2.5-pro:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "analyze this", gotBody.Contents[0].Parts[0].Text)
	require.NotNil(t, gotBody.GenerationConfig)
	assert.Equal(t, 0.7, gotBody.GenerationConfig.Temperature)
	assert.Equal(t, 0.95, gotBody.GenerationConfig.TopP)
	assert.Equal(t, 4096, gotBody.GenerationConfig.MaxOutputTokens)
}

func TestGeminiInvoke_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid key", http.StatusForbidden)
	}))
	defer ts.Close()

	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_API_URL", ts.URL)

	c := NewGeminiClient("gemini-2.5-pro")
	_, err := c.Invoke(context.Background(), "analyze this", DefaultGenerationConfig())
	require.Error(t, err)

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_PROVIDER, appErr.Code)
}

func TestGeminiInvoke_NoCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_API_URL", ts.URL)

	c := NewGeminiClient("gemini-2.5-pro")
	_, err := c.Invoke(context.Background(), "analyze this", DefaultGenerationConfig())
	require.Error(t, err)

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_PROVIDER, appErr.Code)
}
