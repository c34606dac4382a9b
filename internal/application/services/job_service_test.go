package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/winnipegconnect/backend/internal/application/services"
	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

func TestJobService_List(t *testing.T) {
	repo := new(mockJobRepository)
	service := services.NewJobService(repo)
	filter := repositories.JobFilter{Status: entities.JobStatusOpen}
	repo.On("List", mock.Anything, filter).Return([]*entities.Job{{ID: 1}}, nil)

	jobs, err := service.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestJobService_ListRejectsUnknownStatus(t *testing.T) {
	repo := new(mockJobRepository)
	service := services.NewJobService(repo)

	_, err := service.List(context.Background(), repositories.JobFilter{Status: "archived"})

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
