package entities

// JobStatus represents the lifecycle state of a posted job
type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
)

// Job represents a job posted by a seeker
type Job struct {
	ID          int       `json:"id" yaml:"id" db:"id"`
	Title       string    `json:"title" yaml:"title" db:"title"`
	Category    string    `json:"category" yaml:"category" db:"category"`
	Budget      string    `json:"budget" yaml:"budget" db:"budget"`
	Location    string    `json:"location" yaml:"location" db:"location"`
	PostedBy    string    `json:"postedBy" yaml:"postedBy" db:"posted_by"`
	PostedDate  string    `json:"postedDate" yaml:"postedDate" db:"posted_date"`
	Description string    `json:"description" yaml:"description" db:"description"`
	Status      JobStatus `json:"status" yaml:"status" db:"status"`
	Applicants  int       `json:"applicants" yaml:"applicants" db:"applicants"`
}
