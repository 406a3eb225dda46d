package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenAIClientComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "gpt-5.1", req.Model)
		require.Len(t, req.Messages, 2)
		require.Equal(t, 1024, req.MaxCompletionTokens)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "hello there"}},
			},
		})
	}))
	defer srv.Close()

	c := NewOpenAIClient("key", srv.URL+"/v1", "")
	got, err := c.Complete(context.Background(), []Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "yes?"},
	})
	require.NoError(t, err)
	require.Equal(t, "hello there", got)
}

func TestOpenAIClientCompleteErrors(t *testing.T) {
	// 非 200 狀態碼
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()
	c := NewOpenAIClient("key", srv.URL, "")
	_, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)

	// 空 choices
	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv2.Close()
	c = NewOpenAIClient("key", srv2.URL, "")
	_, err = c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)

	// 連線失敗
	c = NewOpenAIClient("key", "http://127.0.0.1:1", "")
	_, err = c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
}

func TestFakeClient(t *testing.T) {
	f := &FakeClient{CompleteFn: func(_ context.Context, msgs []Message) (string, error) {
		return "ok", nil
	}}
	got, err := f.Complete(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, "ok", got)

	require.Panics(t, func() {
		(&FakeClient{}).Complete(context.Background(), nil) //nolint:errcheck
	})
}
