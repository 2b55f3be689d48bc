package pokeapi

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}

const listBody = `{
  "count": 1302,
  "next": "https://pokeapi.co/api/v2/pokemon?offset=2&limit=2",
  "previous": null,
  "results": [
    {"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
    {"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"}
  ]
}`

const pikachuBody = `{
  "id": 25,
  "name": "pikachu",
  "height": 4,
  "weight": 60,
  "base_experience": 112,
  "sprites": {
    "front_default": "https://sprites.example/25.png",
    "front_shiny": "https://sprites.example/shiny/25.png",
    "back_default": null,
    "back_shiny": null
  },
  "types": [{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}],
  "abilities": [
    {"ability": {"name": "lightning-rod", "url": ""}, "is_hidden": true, "slot": 3},
    {"ability": {"name": "static", "url": ""}, "is_hidden": false, "slot": 1}
  ],
  "moves": [{"move": {"name": "mega-punch", "url": ""}}, {"move": {"name": "pay-day", "url": ""}}]
}`

// recorder captures requests seen by the fake catalog
type recorder struct {
	mu   sync.Mutex
	reqs []*url.URL
}

func (r *recorder) record(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *req.URL
	r.reqs = append(r.reqs, &u)
}

func (r *recorder) all() []*url.URL {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*url.URL(nil), r.reqs...)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL + "/api/v2/", Timeout: 2 * time.Second}, nil)
}

func TestFetchList(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listBody))
	})

	page, err := client.FetchList(context.Background(), domain.PageCursor{Offset: 0, Limit: 2})
	require.NoError(t, err)

	reqs := rec.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/api/v2/pokemon", reqs[0].Path)
	assert.Equal(t, "0", reqs[0].Query().Get("offset"))
	assert.Equal(t, "2", reqs[0].Query().Get("limit"))

	assert.Equal(t, 1302, page.Count)
	assert.Equal(t, []domain.ListEntry{
		{Name: "bulbasaur", ReferenceURL: "https://pokeapi.co/api/v2/pokemon/1/"},
		{Name: "ivysaur", ReferenceURL: "https://pokeapi.co/api/v2/pokemon/2/"},
	}, page.Entries)
	require.NotNil(t, page.Next)
	assert.Equal(t, domain.PageCursor{Offset: 2, Limit: 2}, *page.Next)
}

func TestFetchDetail(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(pikachuBody))
	})

	byName, err := client.FetchDetailByName(context.Background(), "pikachu")
	require.NoError(t, err)
	byID, err := client.FetchDetailByID(context.Background(), 25)
	require.NoError(t, err)

	reqs := rec.all()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/api/v2/pokemon/pikachu", reqs[0].Path)
	assert.Equal(t, "/api/v2/pokemon/25", reqs[1].Path)
	assert.Equal(t, byName, byID)

	assert.Equal(t, 25, byName.ID)
	assert.Equal(t, "pikachu", byName.Name)
	assert.Equal(t, 4, byName.Height)
	assert.Equal(t, 60, byName.Weight)
	assert.Equal(t, 112, byName.BaseExperience)
	assert.Equal(t, "https://sprites.example/25.png", byName.SpriteURL)
	assert.Empty(t, byName.BackSpriteURL)
	assert.Equal(t, []string{"electric"}, byName.Types)
	assert.Equal(t, []string{"static", "lightning-rod"}, byName.Abilities)
	assert.Equal(t, []string{"mega-punch", "pay-day"}, byName.Moves)
}

func TestFetchDetailEscapesName(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		http.NotFound(w, r)
	})

	_, err := client.FetchDetailByName(context.Background(), "../type/1")
	assert.True(t, domain.IsNotFound(err))

	reqs := rec.all()
	require.Len(t, reqs, 1)
	rawPath := reqs[0].EscapedPath()
	assert.True(t, strings.HasPrefix(rawPath, "/api/v2/pokemon/"), rawPath)
	assert.NotContains(t, rawPath, "/type/")
}

func TestFetchBadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FetchList(context.Background(), domain.PageCursor{Limit: 20})
	var bs *domain.BadStatusError
	require.ErrorAs(t, err, &bs)
	assert.Equal(t, 500, bs.Code)

	_, err = client.FetchDetailByID(context.Background(), 1)
	assert.Equal(t, 500, domain.StatusCode(err))
}

func TestFetchNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
	})

	_, err := client.FetchDetailByName(context.Background(), "missingno")
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "bad_status", domain.Kind(err))
}

func TestFetchMalformed(t *testing.T) {
	bodies := map[string]string{
		"null":      "null",
		"empty":     "",
		"truncated": `{"count": 3, "results": [`,
		"wrong":     `{"count": "many", "id": "twenty-five"}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			})

			_, err := client.FetchList(context.Background(), domain.PageCursor{Limit: 20})
			assert.ErrorIs(t, err, domain.ErrMalformed)

			_, err = client.FetchDetailByName(context.Background(), "pikachu")
			assert.ErrorIs(t, err, domain.ErrMalformed)
		})
	}
}

func TestErrorResponsesReuseConnection(t *testing.T) {
	var mu sync.Mutex
	conns := 0

	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail": "upstream failed"}`))
	}))
	srv.Config.ConnState = func(_ net.Conn, state http.ConnState) {
		if state == http.StateNew {
			mu.Lock()
			conns++
			mu.Unlock()
		}
	}
	srv.Start()
	t.Cleanup(srv.Close)

	client := NewClient(Options{BaseURL: srv.URL, Timeout: 2 * time.Second}, nil)
	for range 5 {
		_, err := client.FetchDetailByName(context.Background(), "pikachu")
		require.Equal(t, 500, domain.StatusCode(err))
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, conns)
}

func TestFetchShortBodyIsTransport(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", strconv.Itoa(len(pikachuBody)))
		_, _ = w.Write([]byte(pikachuBody[:40]))
	})

	_, err := client.FetchDetailByName(context.Background(), "pikachu")
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.NotErrorIs(t, err, domain.ErrMalformed)
}

func TestFetchTransport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	client := NewClient(Options{BaseURL: base, Timeout: time.Second}, nil)
	_, err := client.FetchList(context.Background(), domain.PageCursor{Limit: 20})
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, "transport", domain.Kind(err))
}

func TestFetchCancelledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pikachuBody))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchDetailByID(ctx, 25)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSingleAttempt(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.FetchList(context.Background(), domain.PageCursor{Limit: 20})
	assert.Equal(t, 503, domain.StatusCode(err))
	assert.Len(t, rec.all(), 1)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Options{}, nil)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c = NewClient(Options{BaseURL: "http://localhost:8080/api/v2/", RequestsPerSecond: 5}, nil)
	assert.Equal(t, "http://localhost:8080/api/v2", c.BaseURL())
}
