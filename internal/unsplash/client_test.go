package unsplash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPhotoFirstResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "Car Audi Sedan A4", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"results":[{"urls":{"regular":"https://img.example/a4"}},{"urls":{"regular":"https://img.example/other"}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.BaseURL = server.URL

	url, err := client.SearchPhoto("Car Audi Sedan A4")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/a4", url)
}

func TestSearchPhotoNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.BaseURL = server.URL

	url, err := client.SearchPhoto("Car Nothing Ever Matches")
	require.NoError(t, err, "an empty result set is not an error")
	assert.Equal(t, "", url)
}

func TestSearchPhotoNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient("bad-key")
	client.BaseURL = server.URL

	_, err := client.SearchPhoto("anything")
	assert.Error(t, err)
}
