package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	"github.com/winnipegconnect/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

const jobsTable = "jobs"

var jobColumns = []interface{}{
	"id", "title", "category", "budget", "location", "posted_by",
	"posted_date", "description", "status", "applicants",
}

// JobAdapter implements JobRepository over PostgreSQL
type JobAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewJobAdapter creates a new job adapter
func NewJobAdapter(client *postgres.Client) repositories.JobRepository {
	return &JobAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List retrieves jobs matching the filter ordered by ID
func (a *JobAdapter) List(ctx context.Context, filter repositories.JobFilter) ([]*entities.Job, error) {
	ds := a.db.Select(jobColumns...).From(jobsTable)

	if filter.Status != "" {
		ds = ds.Where(goqu.Ex{"status": string(filter.Status)})
	}
	if filter.Category != "" && filter.Category != entities.AllCategories {
		ds = ds.Where(goqu.Ex{"category": filter.Category})
	}

	query, args, err := ds.Order(goqu.I("id").Asc()).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list jobs", err)
	}
	defer rows.Close()

	jobs := make([]*entities.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate jobs", err)
	}
	return jobs, nil
}

// GetByID retrieves a job by ID
func (a *JobAdapter) GetByID(ctx context.Context, id int) (*entities.Job, error) {
	query, args, err := a.db.Select(jobColumns...).
		From(jobsTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	job, err := scanJob(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("job %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get job", err)
	}
	return job, nil
}

// Create inserts a job
func (a *JobAdapter) Create(ctx context.Context, job *entities.Job) error {
	record := goqu.Record{
		"id":          job.ID,
		"title":       job.Title,
		"category":    job.Category,
		"budget":      job.Budget,
		"location":    job.Location,
		"posted_by":   job.PostedBy,
		"posted_date": job.PostedDate,
		"description": job.Description,
		"status":      string(job.Status),
		"applicants":  job.Applicants,
	}

	query, args, err := a.db.Insert(jobsTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return apperrors.NewConflictError(fmt.Sprintf("job %d already exists", job.ID))
		}
		return apperrors.NewInternalError("failed to create job", err)
	}
	return nil
}

func scanJob(row rowScanner) (*entities.Job, error) {
	job := &entities.Job{}
	var status string
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Category,
		&job.Budget,
		&job.Location,
		&job.PostedBy,
		&job.PostedDate,
		&job.Description,
		&status,
		&job.Applicants,
	)
	if err != nil {
		return nil, err
	}
	job.Status = entities.JobStatus(status)
	return job, nil
}
