package movies

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-manager/core/catalog"
	"movie-manager/feature/movies/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *fixture) {
	t.Helper()
	f := newFixture(t)
	app := fiber.New()
	require.NoError(t, NewFeature(f.service).Load(app))
	return app, f
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHandler_CreateGetList(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/movies", `{"title":"Alien"}`)
	require.Equal(t, http.StatusCreated, status)

	var created models.Movie
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "Alien", created.Title)
	assert.NotEmpty(t, created.Identifier)

	status, body = doRequest(t, app, http.MethodGet, "/movies/"+created.Identifier, "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"hasWatched":false`)

	status, body = doRequest(t, app, http.MethodGet, "/movies", "")
	require.Equal(t, http.StatusOK, status)
	var list []models.Movie
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 1)
}

func TestHandler_ListEmpty(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/movies", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHandler_CreateValidation(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doRequest(t, app, http.MethodPost, "/movies", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodPost, "/movies", `{`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHandler_GetErrors(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doRequest(t, app, http.MethodGet, "/movies/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodGet, "/movies/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHandler_SetWatchedAndDelete(t *testing.T) {
	app, f := newTestApp(t)

	movie, err := f.service.CreateMovie(context.Background(), "Ran", nil)
	require.NoError(t, err)
	f.service.Close()

	status, _ := doRequest(t, app, http.MethodPatch, "/movies/"+movie.Identifier, `{}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := doRequest(t, app, http.MethodPatch, "/movies/"+movie.Identifier, `{"hasWatched":true}`)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"hasWatched":true`)

	status, _ = doRequest(t, app, http.MethodDelete, "/movies/"+movie.Identifier, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = doRequest(t, app, http.MethodDelete, "/movies/"+movie.Identifier, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHandler_Search(t *testing.T) {
	app, f := newTestApp(t)

	f.searcher.On("Search", mock.Anything, "heat").Return([]catalog.Result{{ID: 949, Title: "Heat"}}, nil)
	f.searcher.On("Search", mock.Anything, "").Return(nil, catalog.ErrEmptyTerm)
	f.searcher.On("Search", mock.Anything, "down").Return(nil, catalog.ErrUnexpectedCode)
	f.searcher.On("Search", mock.Anything, "nokey").Return(nil, catalog.ErrNotConfigured)

	status, body := doRequest(t, app, http.MethodGet, "/movies/search?query=heat", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"title":"Heat"}]`, string(body))

	status, _ = doRequest(t, app, http.MethodGet, "/movies/search", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodGet, "/movies/search?query=down", "")
	assert.Equal(t, http.StatusBadGateway, status)

	status, _ = doRequest(t, app, http.MethodGet, "/movies/search?query=nokey", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestHandler_Reconcile(t *testing.T) {
	app, f := newTestApp(t)
	id := uuid.NewString()
	body := `[{"title":"Fresh","identifier":"` + id + `","hasWatched":true},{"title":"Anonymous"}]`

	status, resp := doRequest(t, app, http.MethodPost, "/movies/reconcile?dry_run=true", body)
	require.Equal(t, http.StatusOK, status)
	var result Result
	require.NoError(t, json.Unmarshal(resp, &result))
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Plan.Summary.Creates)
	assert.Equal(t, 1, result.Plan.Summary.Unkeyed)

	_, err := f.store.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)

	status, resp = doRequest(t, app, http.MethodPost, "/movies/reconcile", body)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp, &result))
	assert.Equal(t, 1, result.Executed)

	stored, err := f.store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, stored.HasWatched)

	status, _ = doRequest(t, app, http.MethodPost, "/movies/reconcile", `{"title":"not a list"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHandler_Sync(t *testing.T) {
	app, f := newTestApp(t)
	id := uuid.NewString()
	f.remote.docs[id] = json.RawMessage(`{"title":"Remote","identifier":"` + id + `"}`)

	status, _ := doRequest(t, app, http.MethodPost, "/movies/sync", "")
	require.Equal(t, http.StatusOK, status)

	stored, err := f.store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Remote", stored.Title)

	f.remote.fail = true
	status, _ = doRequest(t, app, http.MethodPost, "/movies/sync", "")
	assert.Equal(t, http.StatusBadGateway, status)
}
