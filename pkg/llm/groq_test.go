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

func TestGroqInvoke_MissingAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	c := NewGroqClient("llama-3.1-70b-versatile")
	_, err := c.Invoke(context.Background(), "analyze this", DefaultGenerationConfig())
	require.Error(t, err)

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_CONFIGURATION, appErr.Code)
	assert.Contains(t, appErr.Message, "GROQ_API_KEY")
}

func TestGroqInvoke_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody groqChatRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"action_items\":[]}"}}]}`))
	}))
	defer ts.Close()

	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_API_URL", ts.URL)

	c := NewGroqClient("llama-3.1-70b-versatile")
	reply, err := c.Invoke(context.Background(), "analyze this", DefaultGenerationConfig())
	require.NoError(t, err)

	assert.Equal(t, `{"action_items":[]}`, reply)
	assert.Equal(t, "/openai/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "llama-3.1-70b-versatile", gotBody.Model)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "analyze this", gotBody.Messages[0].Content)
}

func TestGroqInvoke_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer ts.Close()

	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_API_URL", ts.URL)

	c := NewGroqClient("llama-3.1-70b-versatile")
	_, err := c.Invoke(context.Background(), "analyze this", DefaultGenerationConfig())
	require.Error(t, err)

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_PROVIDER, appErr.Code)
}
