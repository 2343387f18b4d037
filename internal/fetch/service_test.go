package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/character-viewer/internal/model"
)

const pageBody = `{
	"info": {"count": 2, "pages": 1, "next": null, "prev": null},
	"results": [
		{"id": 1, "name": "Rick Sanchez", "status": "Alive", "species": "Human", "gender": "Male",
		 "image": "https://rickandmortyapi.com/api/character/avatar/1.jpeg",
		 "url": "https://rickandmortyapi.com/api/character/1", "episode": []},
		{"id": 2, "name": "Morty Smith", "status": "Alive", "species": "Human", "gender": "Male",
		 "image": "https://rickandmortyapi.com/api/character/avatar/2.jpeg",
		 "url": "https://rickandmortyapi.com/api/character/2"}
	]
}`

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	return l
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestNewService(t *testing.T) {
	service := NewService(testLogger())
	assert.Equal(t, DefaultEndpoint, service.Endpoint())
	assert.Equal(t, "https://rickandmortyapi.com/api/character", service.Endpoint())
	assert.Zero(t, service.client.Timeout, "client must not impose a timeout")
}

func TestFetchCharacters_Success(t *testing.T) {
	srv, hits := newServer(t, http.StatusOK, pageBody)
	service := NewServiceWithEndpoint(testLogger(), srv.URL)

	characters, err := service.FetchCharacters(context.Background())
	require.NoError(t, err)
	require.Len(t, characters, 2)

	assert.Equal(t, model.Character{
		ID:      1,
		Name:    "Rick Sanchez",
		Status:  model.StatusAlive,
		Species: "Human",
		Gender:  "Male",
		Image:   "https://rickandmortyapi.com/api/character/avatar/1.jpeg",
		URL:     "https://rickandmortyapi.com/api/character/1",
	}, characters[0])
	assert.Equal(t, "2", characters[1].Key())
	assert.EqualValues(t, 1, atomic.LoadInt32(hits))
}

func TestFetchCharacters_RequestShape(t *testing.T) {
	var method, query, auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		query = r.URL.RawQuery
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	_, err := NewServiceWithEndpoint(testLogger(), srv.URL).FetchCharacters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, method)
	assert.Empty(t, query)
	assert.Empty(t, auth)
}

func TestFetchCharacters_EmptyResults(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"info": {"count": 0}, "results": []}`)

	characters, err := NewServiceWithEndpoint(testLogger(), srv.URL).FetchCharacters(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, characters)
	assert.Empty(t, characters)
}

func TestFetchCharacters_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		cause  error
	}{
		{
			name:   "invalid json",
			status: http.StatusOK,
			body:   `<html>not json</html>`,
		},
		{
			name:   "truncated json",
			status: http.StatusOK,
			body:   `{"results": [{"id": 1,`,
		},
		{
			name:   "missing results",
			status: http.StatusOK,
			body:   `{"error": "There is nothing here"}`,
			cause:  ErrMissingResults,
		},
		{
			name:   "server error with valid json",
			status: http.StatusInternalServerError,
			body:   pageBody,
			cause:  ErrUnexpectedStatus,
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			body:   `{"error": "There is nothing here"}`,
			cause:  ErrUnexpectedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)

			characters, err := NewServiceWithEndpoint(testLogger(), srv.URL).FetchCharacters(context.Background())
			require.Error(t, err)
			assert.Nil(t, characters)
			assert.True(t, IsFetchFailure(err))

			var failure *FetchFailure
			require.True(t, errors.As(err, &failure))
			assert.Equal(t, srv.URL, failure.Endpoint)
			if tt.cause != nil {
				assert.True(t, errors.Is(err, tt.cause), "expected cause %v, got %v", tt.cause, err)
			}
		})
	}
}

func TestFetchCharacters_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	_, err := NewServiceWithEndpoint(testLogger(), endpoint).FetchCharacters(context.Background())
	require.Error(t, err)
	assert.True(t, IsFetchFailure(err))
}

func TestFetchCharacters_CancelledContext(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, pageBody)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewServiceWithEndpoint(testLogger(), srv.URL).FetchCharacters(ctx)
	require.Error(t, err)
	assert.True(t, IsFetchFailure(err))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFetchFailure_Error(t *testing.T) {
	f := &FetchFailure{Endpoint: "https://example.test", Cause: ErrMissingResults}
	assert.Equal(t, "fetch https://example.test: response has no results field", f.Error())
	assert.Equal(t, ErrMissingResults, f.Unwrap())
	assert.False(t, IsFetchFailure(ErrMissingResults))
}
