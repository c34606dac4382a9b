package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/winnipegconnect/backend/internal/adapters/cache"
	"github.com/winnipegconnect/backend/internal/adapters/maps"
	"github.com/winnipegconnect/backend/internal/adapters/memory"
	"github.com/winnipegconnect/backend/internal/api/handlers"
	"github.com/winnipegconnect/backend/internal/application/services"
	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/fixtures"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

type testServer struct {
	mux       *http.ServeMux
	analytics *services.SearchAnalyticsService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	catalog, err := fixtures.Default()
	require.NoError(t, err)

	providerRepo := memory.NewProviderAdapter(catalog.Providers)
	jobRepo := memory.NewJobAdapter(catalog.Jobs)
	analytics := services.NewSearchAnalyticsService(memory.NewSearchAnalyticsAdapter(memory.DefaultAnalyticsCapacity), nil)
	sessions := cache.NewSessionAdapter(memory.NewCacheAdapter(), time.Hour)

	providerHandler := handlers.NewProviderHandler(services.NewProviderService(providerRepo, nil, analytics, nil))
	jobHandler := handlers.NewJobHandler(services.NewJobService(jobRepo))
	sessionHandler := handlers.NewSessionHandler(services.NewSessionService(sessions, jobRepo))
	mapHandler := handlers.NewMapHandler(services.NewMapService(providerRepo, maps.NewPlaceholderRenderer()))
	analyticsHandler := handlers.NewAnalyticsHandler(analytics)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/providers", providerHandler.ListProviders)
	mux.HandleFunc("GET /api/providers/suggest", providerHandler.SuggestProviders)
	mux.HandleFunc("GET /api/providers/{id}", providerHandler.GetProvider)
	mux.HandleFunc("GET /api/categories", providerHandler.ListCategories)
	mux.HandleFunc("GET /api/jobs", jobHandler.ListJobs)
	mux.HandleFunc("GET /api/jobs/{id}", jobHandler.GetJob)
	mux.HandleFunc("GET /api/map/markers", mapHandler.GetMarkers)
	mux.HandleFunc("POST /api/sessions", sessionHandler.CreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", sessionHandler.GetSession)
	mux.HandleFunc("POST /api/sessions/{id}/actions", sessionHandler.ApplyAction)
	mux.HandleFunc("GET /api/sessions/{id}/view", sessionHandler.GetView)
	mux.HandleFunc("DELETE /api/sessions/{id}", sessionHandler.DeleteSession)
	mux.HandleFunc("GET /api/analytics/zero-result-queries", analyticsHandler.GetZeroResultQueries)

	t.Cleanup(func() { analytics.Close() })

	return &testServer{mux: mux, analytics: analytics}
}

func (s *testServer) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, httptest.NewRequest(method, target, reader))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func providerNames(providers []*entities.Provider) []string {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name)
	}
	return names
}

func TestProviderHandler_ListProviders_DefaultsToRatingOrder(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/providers", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[entities.ProviderQueryResult](t, rec)
	assert.Equal(t, 6, result.Count)
	assert.Equal(t, []string{
		"Green Thumb Landscaping",
		"Pet Care Plus",
		"Winnipeg Home Repairs",
		"Red River Tutoring",
		"Prairie Tech Solutions",
		"Clean Pro Winnipeg",
	}, providerNames(result.Providers))
}

func TestProviderHandler_ListProviders_Filters(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"search term", "/api/providers?search=pet", []string{"Pet Care Plus"}},
		{"category", "/api/providers?category=Cleaning", []string{"Clean Pro Winnipeg"}},
		{"min rating", "/api/providers?minRating=4.75", []string{"Green Thumb Landscaping", "Pet Care Plus", "Winnipeg Home Repairs"}},
		{"no match", "/api/providers?search=zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodGet, tt.target, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			result := decode[entities.ProviderQueryResult](t, rec)
			assert.Equal(t, tt.want, providerNames(result.Providers))
			assert.Equal(t, len(tt.want), result.Count)
		})
	}
}

func TestProviderHandler_ListProviders_RejectsBadParameters(t *testing.T) {
	srv := newTestServer(t)

	for _, target := range []string{
		"/api/providers?minRating=high",
		"/api/providers?minRating=7",
		"/api/providers?minRating=-1",
	} {
		rec := srv.do(t, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestProviderHandler_ListProviders_TracksZeroResultSearches(t *testing.T) {
	srv := newTestServer(t)

	srv.do(t, http.MethodGet, "/api/providers?search=plumber", nil)

	assert.Eventually(t, func() bool {
		rec := srv.do(t, http.MethodGet, "/api/analytics/zero-result-queries", nil)
		body := decode[struct {
			Queries []*entities.SearchEvent `json:"queries"`
			Count   int                     `json:"count"`
		}](t, rec)
		return body.Count == 1 && body.Queries[0].SearchTerm == "plumber"
	}, time.Second, 10*time.Millisecond)
}

func TestProviderHandler_GetProvider(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/providers/6", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Pet Care Plus", decode[entities.Provider](t, rec).Name)

	assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodGet, "/api/providers/99", nil).Code)
	assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodGet, "/api/providers/abc", nil).Code)
}

func TestProviderHandler_SuggestProviders(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/providers/suggest?q=pr", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Suggestions []handlers.ProviderSuggestion `json:"suggestions"`
		Count       int                           `json:"count"`
	}](t, rec)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, 4, body.Suggestions[0].ID)

	assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodGet, "/api/providers/suggest", nil).Code)
	assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodGet, "/api/providers/suggest?q=p&limit=500", nil).Code)
}

func TestProviderHandler_ListCategories(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/categories", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string][]string](t, rec)
	require.NotEmpty(t, body["categories"])
	assert.Equal(t, entities.AllCategories, body["categories"][0])
	assert.Contains(t, body["categories"], "Cleaning")
}

func TestJobHandler(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/jobs?status=open", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Jobs  []*entities.Job `json:"jobs"`
		Count int             `json:"count"`
	}](t, rec)
	assert.Equal(t, 2, body.Count)

	rec = srv.do(t, http.MethodGet, "/api/jobs/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Weekly Lawn Mowing", decode[entities.Job](t, rec).Title)

	assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodGet, "/api/jobs?status=archived", nil).Code)
	assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodGet, "/api/jobs/42", nil).Code)
}

func TestMapHandler_GetMarkers(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/map/markers?category=Cleaning", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[entities.MapView](t, rec)
	assert.True(t, view.Placeholder)
	require.Len(t, view.Markers, 1)
	assert.Equal(t, "Clean Pro Winnipeg", view.Markers[0].Label)
}

func TestSessionHandler_Lifecycle(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[handlers.SessionResponse](t, rec)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "/api/sessions/"+created.ID, rec.Header().Get("Location"))
	assert.Equal(t, "landing", string(created.State.Page))

	base := "/api/sessions/" + created.ID

	rec = srv.do(t, http.MethodPost, base+"/actions", map[string]interface{}{"type": "login"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "role-select", string(decode[handlers.SessionResponse](t, rec).State.Page))

	rec = srv.do(t, http.MethodPost, base+"/actions", map[string]interface{}{"type": "select_role", "role": "seeker"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dashboard", string(decode[handlers.SessionResponse](t, rec).State.Page))

	rec = srv.do(t, http.MethodPost, base+"/actions", map[string]interface{}{"type": "select_job", "jobId": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, decode[handlers.SessionResponse](t, rec).State.SelectedJobID)

	rec = srv.do(t, http.MethodGet, base+"/view", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[services.SessionView](t, rec)
	assert.True(t, view.CanPostJobs)
	require.NotNil(t, view.SelectedJob)
	assert.Equal(t, "Deep Clean Before Move-Out", view.SelectedJob.Title)

	rec = srv.do(t, http.MethodPost, base+"/actions", map[string]interface{}{"type": "fly"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "job-detail", string(decode[handlers.SessionResponse](t, rec).State.Page))

	assert.Equal(t, http.StatusNoContent, srv.do(t, http.MethodDelete, base, nil).Code)
	assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodGet, base, nil).Code)
}

func TestSessionHandler_ApplyAction_InvalidPayload(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/sessions/abc/actions", bytes.NewBufferString("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsHandler_RejectsOutOfRangeLimit(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodGet, "/api/analytics/zero-result-queries?limit=0", nil).Code)
	assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodGet, "/api/analytics/zero-result-queries?limit=51", nil).Code)
	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/api/analytics/zero-result-queries?limit=50", nil).Code)
}

type mockProviderService struct {
	mock.Mock
}

func (m *mockProviderService) Query(ctx context.Context, query entities.ProviderQuery) (*entities.ProviderQueryResult, error) {
	args := m.Called(ctx, query)
	if r := args.Get(0); r != nil {
		return r.(*entities.ProviderQueryResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProviderService) GetByID(ctx context.Context, id int) (*entities.Provider, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*entities.Provider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProviderService) Suggest(ctx context.Context, prefix string, limit int) ([]*entities.Provider, error) {
	args := m.Called(ctx, prefix, limit)
	if p := args.Get(0); p != nil {
		return p.([]*entities.Provider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProviderService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestProviderHandler_HidesInternalErrors(t *testing.T) {
	svc := new(mockProviderService)
	svc.On("Query", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewInternalError("failed to list providers", errors.New("pq: connection refused")))
	handler := handlers.NewProviderHandler(svc)

	rec := httptest.NewRecorder()
	handler.ListProviders(rec, httptest.NewRequest(http.MethodGet, "/api/providers", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestProviderHandler_PassesParsedQuery(t *testing.T) {
	svc := new(mockProviderService)
	want := entities.ProviderQuery{SearchTerm: "lawn", Category: "Landscaping", MinRating: 4.5, SortKey: entities.SortByName}
	svc.On("Query", mock.Anything, want).Return(&entities.ProviderQueryResult{Providers: []*entities.Provider{}}, nil)
	handler := handlers.NewProviderHandler(svc)

	rec := httptest.NewRecorder()
	handler.ListProviders(rec, httptest.NewRequest(http.MethodGet, "/api/providers?search=lawn&category=Landscaping&minRating=4.5&sort=name", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		handler := handlers.NewHealthHandler(map[string]handlers.Pinger{
			"redis": pingFunc(func(context.Context) error { return nil }),
		})
		rec := httptest.NewRecorder()

		handler.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","checks":{"redis":"ok"}}`, rec.Body.String())
	})

	t.Run("dependency down", func(t *testing.T) {
		handler := handlers.NewHealthHandler(map[string]handlers.Pinger{
			"postgres": pingFunc(func(context.Context) error { return errors.New("connection refused") }),
		})
		rec := httptest.NewRecorder()

		handler.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "connection refused")
	})
}
