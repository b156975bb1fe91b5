package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aashnamahajan/DevelopersConnector/internal/core/domain"
	"github.com/aashnamahajan/DevelopersConnector/internal/core/ports"
)

// ProfileService implements profile upsert, retrieval and the embedded
// experience/education sub-resources.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	cache    ports.ProfileCache
	logger   zerolog.Logger
}

// NewProfileService wires the service. cache may be nil, in which case the
// listing always hits the repository.
func NewProfileService(profiles ports.ProfileRepository, users ports.UserRepository, cache ports.ProfileCache, logger zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, cache: cache, logger: logger}
}

// Upsert creates the caller's profile or merges the submitted fields into
// the existing one. Resubmitting identical input leaves stored state
// unchanged.
func (s *ProfileService) Upsert(ctx context.Context, userID string, input ports.UpsertProfileInput) (*domain.Profile, error) {
	update := domain.ProfileUpdate{
		Status:     input.Status,
		Skills:     splitSkills(input.Skills),
		Company:    input.Company,
		Location:   input.Location,
		Website:    input.Website,
		Bio:        input.Bio,
		GithubUser: input.GithubUser,
		Youtube:    input.Youtube,
		Twitter:    input.Twitter,
		Instagram:  input.Instagram,
		Linkedin:   input.Linkedin,
		Facebook:   input.Facebook,
	}

	now := time.Now().UTC()

	profile, err := s.profiles.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		update.Apply(profile)
		profile.UpdatedAt = now
		profile, err = s.profiles.Save(ctx, profile)
	case errors.Is(err, domain.ErrProfileNotFound):
		profile = &domain.Profile{
			UserID:     userID,
			Skills:     []string{},
			Experience: []domain.Experience{},
			Education:  []domain.Education{},
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		update.Apply(profile)
		profile, err = s.profiles.Create(ctx, profile)
	}
	if err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	s.logger.Info().Str("user_id", userID).Msg("profile saved")
	return s.populateOwner(ctx, profile)
}

// GetByUserID returns the profile owned by userID with the owner's name and
// avatar resolved.
func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.populateOwner(ctx, profile)
}

// List returns all profiles with owners resolved, served from the cache
// when possible.
func (s *ProfileService) List(ctx context.Context) ([]*domain.Profile, error) {
	if s.cache != nil {
		cached, err := s.cache.GetList(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("profile cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if _, err := s.populateOwner(ctx, p); err != nil {
			return nil, err
		}
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, profiles); err != nil {
			s.logger.Warn().Err(err).Msg("profile cache write failed")
		}
	}
	return profiles, nil
}

// AddExperience prepends a work history entry and returns the full profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, input ports.ExperienceInput) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.AddExperience(domain.Experience{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	})
	return s.saveAndPopulate(ctx, profile)
}

// RemoveExperience drops the entry with the given id. An unknown id is a
// no-op that still saves and returns the unchanged profile.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.RemoveExperience(experienceID)
	return s.saveAndPopulate(ctx, profile)
}

// AddEducation prepends an education entry and returns the full profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, input ports.EducationInput) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.AddEducation(domain.Education{
		ID:           uuid.NewString(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	})
	return s.saveAndPopulate(ctx, profile)
}

// RemoveEducation drops the entry with the given id, with the same unknown-id
// behavior as RemoveExperience.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, educationID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.RemoveEducation(educationID)
	return s.saveAndPopulate(ctx, profile)
}

func (s *ProfileService) saveAndPopulate(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	profile.UpdatedAt = time.Now().UTC()
	saved, err := s.profiles.Save(ctx, profile)
	if err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	return s.populateOwner(ctx, saved)
}

// populateOwner resolves the owning user's name and avatar onto the profile.
func (s *ProfileService) populateOwner(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	user, err := s.users.FindByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	profile.User = domain.ProfileOwner{ID: user.ID, Name: user.Name, Avatar: user.Avatar}
	return profile, nil
}

func (s *ProfileService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("profile cache invalidation failed")
	}
}

// splitSkills turns the comma-separated skills string into an ordered list,
// trimming whitespace around each element and dropping empty ones.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
