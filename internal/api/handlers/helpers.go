package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/infrastructure/observability"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

var validate = validator.New()

// providerQueryParams are the query string fields shared by the provider and map endpoints
type providerQueryParams struct {
	Search    string  `validate:"max=200"`
	Category  string  `validate:"max=100"`
	MinRating float64 `validate:"gte=0,lte=5"`
	Sort      string  `validate:"max=20"`
}

// parseProviderQuery reads search, category, minRating and sort from the
// query string. A missing sort falls back to rating; an unknown one is kept
// and leaves the result in catalog order.
func parseProviderQuery(r *http.Request) (entities.ProviderQuery, error) {
	q := r.URL.Query()
	params := providerQueryParams{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	}

	if raw := q.Get("minRating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return entities.ProviderQuery{}, apperrors.NewValidationError("minRating must be a number")
		}
		params.MinRating = minRating
	}

	if err := validate.Struct(params); err != nil {
		return entities.ProviderQuery{}, apperrors.NewValidationError("invalid query parameters: " + err.Error())
	}

	query := entities.DefaultProviderQuery()
	query.SearchTerm = params.Search
	query.Category = params.Category
	query.MinRating = params.MinRating
	if params.Sort != "" {
		query.SortKey = entities.SortKey(params.Sort)
	}
	return query, nil
}

// parseLimit reads an optional limit parameter within [1, max]
func parseLimit(r *http.Request, fallback, max int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError("limit must be an integer")
	}
	if err := validate.Var(limit, "min=1,max="+strconv.Itoa(max)); err != nil {
		return 0, apperrors.NewValidationError("limit must be between 1 and " + strconv.Itoa(max))
	}
	return limit, nil
}

// parseID reads a positive integer path value
func parseID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name + " must be a positive integer")
	}
	return id, nil
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps err to a status code and logs server-side failures
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		observability.LoggerFromContext(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("request failed")
	}
	respondWithError(w, status, message)
}
