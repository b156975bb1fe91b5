package ports

import (
	"context"
	"time"

	"github.com/aashnamahajan/DevelopersConnector/internal/core/domain"
)

// UpsertProfileInput carries the profile submission. Skills is the raw
// comma-separated string; the service splits and trims it. Optional fields
// are nil when absent so partial submissions never clear stored data.
type UpsertProfileInput struct {
	Status     string
	Skills     string
	Company    *string
	Location   *string
	Website    *string
	Bio        *string
	GithubUser *string
	Youtube    *string
	Twitter    *string
	Instagram  *string
	Linkedin   *string
	Facebook   *string
}

// ExperienceInput carries one work history entry to add.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          time.Time
	Current     bool
	Description string
}

// EducationInput carries one education history entry to add.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           time.Time
	Current      bool
	Description  string
}

type ProfileService interface {
	Upsert(ctx context.Context, userID string, input UpsertProfileInput) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	AddExperience(ctx context.Context, userID string, input ExperienceInput) (*domain.Profile, error)
	RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error)
	AddEducation(ctx context.Context, userID string, input EducationInput) (*domain.Profile, error)
	RemoveEducation(ctx context.Context, userID, educationID string) (*domain.Profile, error)
}
