package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/winnipegconnect/backend/internal/domain/appstate"
	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

// SessionView is the role-specific view of a session plus the selected job
type SessionView struct {
	appstate.View
	SelectedJob *entities.Job `json:"selectedJob,omitempty"`
}

// SessionService keeps per-client view state
type SessionService struct {
	repo  repositories.SessionRepository
	jobs  repositories.JobRepository
	newID func() string

	// serializes read-modify-write of a single session
	locks sync.Map
}

// NewSessionService creates a new session service
func NewSessionService(repo repositories.SessionRepository, jobs repositories.JobRepository) *SessionService {
	return &SessionService{
		repo:  repo,
		jobs:  jobs,
		newID: func() string { return uuid.New().String() },
	}
}

// Create starts a session in the initial state
func (s *SessionService) Create(ctx context.Context) (string, appstate.State, error) {
	id := s.newID()
	state := appstate.Initial()
	if err := s.repo.Save(ctx, id, state); err != nil {
		return "", appstate.State{}, err
	}
	return id, state, nil
}

// Get returns the state of a session
func (s *SessionService) Get(ctx context.Context, id string) (appstate.State, error) {
	return s.repo.Get(ctx, id)
}

// Apply runs action against the session and stores the resulting state. An
// invalid action leaves the stored state untouched.
func (s *SessionService) Apply(ctx context.Context, id string, action appstate.Action) (appstate.State, error) {
	unlock := s.lock(id)
	defer unlock()

	state, err := s.repo.Get(ctx, id)
	if err != nil {
		return appstate.State{}, err
	}

	if action.Type == appstate.ActionSelectJob && action.JobID > 0 {
		if _, err := s.jobs.GetByID(ctx, action.JobID); err != nil {
			if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
				return state, apperrors.NewValidationError(err.Error())
			}
			return state, err
		}
	}

	next, err := appstate.Apply(state, action)
	if err != nil {
		return state, err
	}

	if err := s.repo.Save(ctx, id, next); err != nil {
		return state, err
	}
	return next, nil
}

// View returns the role-specific view of a session
func (s *SessionService) View(ctx context.Context, id string) (*SessionView, error) {
	state, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &SessionView{View: appstate.ViewFor(state)}
	if state.SelectedJobID != 0 {
		job, err := s.jobs.GetByID(ctx, state.SelectedJobID)
		if err != nil && !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, err
		}
		view.SelectedJob = job
	}
	return view, nil
}

// Delete ends a session
func (s *SessionService) Delete(ctx context.Context, id string) error {
	unlock := s.lock(id)
	defer unlock()

	err := s.repo.Delete(ctx, id)
	s.locks.Delete(id)
	return err
}

func (s *SessionService) lock(id string) func() {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
