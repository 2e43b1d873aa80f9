package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/translate", r.URL.Path)

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hola", req.Text)
		assert.Equal(t, "en", req.TargetLanguage)

		json.NewEncoder(w).Encode(Response{
			TranslatedText:   "hello",
			DetectedLanguage: "es",
			Confidence:       0.97,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	resp, err := client.Translate(context.Background(), Request{Text: "hola", TargetLanguage: "en"})

	require.NoError(t, err)
	assert.Equal(t, "hello", resp.TranslatedText)
	assert.Equal(t, "es", resp.DetectedLanguage)
	assert.InDelta(t, 0.97, resp.Confidence, 1e-9)
}

func TestTranslate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.Translate(context.Background(), Request{Text: "x", TargetLanguage: "en"})
	assert.Error(t, err)
}
