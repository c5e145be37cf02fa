package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
)

func TestLookupResolvesProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players", r.URL.Path)
		assert.Equal(t, "soeholt", r.URL.Query().Get("nickname"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"player_id": "abc-123",
			"nickname": "soeholt",
			"avatar": "https://cdn.example/soeholt.png",
			"country": "dk"
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	profile, err := client.Lookup(context.Background(), "soeholt")
	require.NoError(t, err)

	assert.Equal(t, model.PlayerID("abc-123"), profile.ID)
	assert.Equal(t, "soeholt", profile.Nickname)
	assert.Equal(t, "https://cdn.example/soeholt.png", profile.Avatar)
	assert.Equal(t, "dk", profile.Country)
}

func TestLookupNotFoundStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"not found"}]}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	_, err := client.Lookup(context.Background(), "ghost")
	assert.ErrorIs(t, err, model.ErrProfileNotFound)
}

func TestLookupMissingPlayerID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	_, err := client.Lookup(context.Background(), "ghost")
	assert.ErrorIs(t, err, model.ErrProfileNotFound)
}

func TestLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	_, err := client.Lookup(context.Background(), "soeholt")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrProfileNotFound)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestStaticLookup(t *testing.T) {
	dir := NewStatic(model.Profile{ID: "p1", Nickname: "soeholt", Country: "dk"})

	profile, err := dir.Lookup(context.Background(), "soeholt")
	require.NoError(t, err)
	assert.Equal(t, model.PlayerID("p1"), profile.ID)

	_, err = dir.Lookup(context.Background(), "ghost")
	assert.ErrorIs(t, err, model.ErrProfileNotFound)
}
