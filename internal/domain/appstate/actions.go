package appstate

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/roles"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

var validate = validator.New()

// ActionType names a user action
type ActionType string

const (
	ActionNavigate     ActionType = "navigate"
	ActionLogin        ActionType = "login"
	ActionLogout       ActionType = "logout"
	ActionSelectRole   ActionType = "select_role"
	ActionSelectJob    ActionType = "select_job"
	ActionClearJob     ActionType = "clear_job"
	ActionToggleMap    ActionType = "toggle_map"
	ActionSetSearch    ActionType = "set_search"
	ActionSetCategory  ActionType = "set_category"
	ActionSetMinRating ActionType = "set_min_rating"
	ActionSetSort      ActionType = "set_sort"
	ActionResetFilters ActionType = "reset_filters"
)

// Action is a user action with its payload. Only the fields the action type
// needs are read.
type Action struct {
	Type       ActionType        `json:"type" validate:"required,oneof=navigate login logout select_role select_job clear_job toggle_map set_search set_category set_min_rating set_sort reset_filters"`
	Page       roles.Page        `json:"page,omitempty"`
	Role       roles.Role        `json:"role,omitempty" validate:"omitempty,oneof=seeker provider"`
	JobID      int               `json:"jobId,omitempty" validate:"gte=0"`
	SearchTerm *string           `json:"searchTerm,omitempty" validate:"omitempty,max=200"`
	Category   *string           `json:"category,omitempty" validate:"omitempty,max=100"`
	MinRating  *float64          `json:"minRating,omitempty"`
	SortKey    *entities.SortKey `json:"sortKey,omitempty"`
}

// Apply returns the state that follows s after action. On error s is returned
// unchanged together with a validation error.
func Apply(s State, action Action) (State, error) {
	if err := validate.Struct(action); err != nil {
		return s, apperrors.NewValidationError(fmt.Sprintf("invalid action: %v", err))
	}

	switch action.Type {
	case ActionNavigate:
		return navigate(s, action.Page)

	case ActionLogin:
		s.IsAuthenticated = true
		if s.Role.Valid() {
			s.Page = roles.PageDashboard
		} else {
			s.Page = roles.PageRoleSelect
		}
		return s, nil

	case ActionLogout:
		return Initial(), nil

	case ActionSelectRole:
		if !s.IsAuthenticated {
			return s, apperrors.NewValidationError("sign in before choosing a role")
		}
		if !action.Role.Valid() {
			return s, apperrors.NewValidationError("role must be seeker or provider")
		}
		s.Role = action.Role
		s.Page = roles.PageDashboard
		return s, nil

	case ActionSelectJob:
		if action.JobID <= 0 {
			return s, apperrors.NewValidationError("jobId is required")
		}
		selected := s
		selected.SelectedJobID = action.JobID
		next, err := navigate(selected, roles.PageJobDetail)
		if err != nil {
			return s, err
		}
		if next.Page != roles.PageJobDetail {
			// redirected to sign in or role selection; the job is not kept
			next.SelectedJobID = s.SelectedJobID
		}
		return next, nil

	case ActionClearJob:
		s.SelectedJobID = 0
		if s.Page == roles.PageJobDetail {
			s.Page = roles.PageJobs
		}
		return s, nil

	case ActionToggleMap:
		s.ShowMap = !s.ShowMap
		return s, nil

	case ActionSetSearch:
		if action.SearchTerm == nil {
			return s, apperrors.NewValidationError("searchTerm is required")
		}
		s.Query.SearchTerm = *action.SearchTerm
		return s, nil

	case ActionSetCategory:
		if action.Category == nil {
			return s, apperrors.NewValidationError("category is required")
		}
		s.Query.Category = *action.Category
		return s, nil

	case ActionSetMinRating:
		if action.MinRating == nil {
			return s, apperrors.NewValidationError("minRating is required")
		}
		s.Query.MinRating = *action.MinRating
		return s, nil

	case ActionSetSort:
		if action.SortKey == nil {
			return s, apperrors.NewValidationError("sortKey is required")
		}
		s.Query.SortKey = *action.SortKey
		return s, nil

	case ActionResetFilters:
		s.Query = entities.DefaultProviderQuery()
		return s, nil
	}

	return s, apperrors.NewValidationError(fmt.Sprintf("unknown action %q", action.Type))
}

// navigate moves to page, redirecting to the sign-in or role selection page
// when the session is not ready for it
func navigate(s State, page roles.Page) (State, error) {
	if !page.Known() {
		return s, apperrors.NewValidationError(fmt.Sprintf("unknown page %q", page))
	}

	switch {
	case page.Public():
	case !s.IsAuthenticated:
		page = roles.PageLogin
	case page == roles.PageRoleSelect:
	case !s.Role.Valid():
		page = roles.PageRoleSelect
	case !s.Capability().AllowsPage(page):
		return s, apperrors.NewValidationError(fmt.Sprintf("page %q is not available to %s accounts", page, s.Role))
	case page == roles.PageJobDetail && s.SelectedJobID == 0:
		page = roles.PageJobs
	}

	s.Page = page
	return s, nil
}
