package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/winnipegconnect/backend/internal/domain/appstate"
	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
)

type mockProviderRepository struct {
	mock.Mock
}

func (m *mockProviderRepository) List(ctx context.Context) ([]*entities.Provider, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*entities.Provider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProviderRepository) GetByID(ctx context.Context, id int) (*entities.Provider, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*entities.Provider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProviderRepository) Create(ctx context.Context, p *entities.Provider) error {
	return m.Called(ctx, p).Error(0)
}

type mockProviderSearchRepository struct {
	mock.Mock
}

func (m *mockProviderSearchRepository) Index(ctx context.Context, p *entities.Provider) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProviderSearchRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProviderSearchRepository) Suggest(ctx context.Context, prefix string, limit int) ([]int, error) {
	args := m.Called(ctx, prefix, limit)
	if ids := args.Get(0); ids != nil {
		return ids.([]int), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockJobRepository struct {
	mock.Mock
}

func (m *mockJobRepository) List(ctx context.Context, filter repositories.JobFilter) ([]*entities.Job, error) {
	args := m.Called(ctx, filter)
	if jobs := args.Get(0); jobs != nil {
		return jobs.([]*entities.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJobRepository) GetByID(ctx context.Context, id int) (*entities.Job, error) {
	args := m.Called(ctx, id)
	if job := args.Get(0); job != nil {
		return job.(*entities.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJobRepository) Create(ctx context.Context, job *entities.Job) error {
	return m.Called(ctx, job).Error(0)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Get(ctx context.Context, id string) (appstate.State, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(appstate.State), args.Error(1)
}

func (m *mockSessionRepository) Save(ctx context.Context, id string, state appstate.State) error {
	return m.Called(ctx, id, state).Error(0)
}

func (m *mockSessionRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockSearchAnalyticsRepository struct {
	mock.Mock
}

func (m *mockSearchAnalyticsRepository) LogEvent(ctx context.Context, event *entities.SearchEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockSearchAnalyticsRepository) GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error) {
	args := m.Called(ctx, limit)
	if events := args.Get(0); events != nil {
		return events.([]*entities.SearchEvent), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAnalyticsSink struct {
	mock.Mock
}

func (m *mockAnalyticsSink) Publish(ctx context.Context, event *entities.SearchEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockAnalyticsSink) Close() error {
	return m.Called().Error(0)
}

type mockMapRenderer struct {
	mock.Mock
}

func (m *mockMapRenderer) Render(ctx context.Context, markers []entities.MapMarker) (*entities.MapView, error) {
	args := m.Called(ctx, markers)
	if v := args.Get(0); v != nil {
		return v.(*entities.MapView), args.Error(1)
	}
	return nil, args.Error(1)
}
