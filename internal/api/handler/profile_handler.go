package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aashnamahajan/DevelopersConnector/internal/api/metrics"
	"github.com/aashnamahajan/DevelopersConnector/internal/core/ports"
)

// ProfileHandler handles HTTP requests for profile operations.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Upsert creates or updates the authenticated user's profile.
//
// @Summary      Create or update the current user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      upsertProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Router       /api/profile/me [post]
func (h *ProfileHandler) Upsert(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req upsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Upsert(c.Request().Context(), userID, ports.UpsertProfileInput{
		Status:     req.Status,
		Skills:     req.Skills,
		Company:    req.Company,
		Location:   req.Location,
		Website:    req.Website,
		Bio:        req.Bio,
		GithubUser: req.GithubUsername,
		Youtube:    req.Youtube,
		Twitter:    req.Twitter,
		Instagram:  req.Instagram,
		Linkedin:   req.Linkedin,
		Facebook:   req.Facebook,
	})
	if err != nil {
		return err
	}

	metrics.ProfileUpsertsTotal.Inc()
	return c.JSON(http.StatusOK, profile)
}

// Mine returns the authenticated user's profile.
//
// @Summary      Get the current user's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/profile/me [get]
func (h *ProfileHandler) Mine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// List returns all profiles.
//
// @Summary      List all profiles
// @Tags         profile
// @Produce      json
// @Success      200  {array}  domain.Profile
// @Router       /api/profile/me/all [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetByUserID returns the profile owned by the given user id.
//
// @Summary      Get a profile by user id
// @Tags         profile
// @Produce      json
// @Param        user_id  path      string  true  "Owning user id"
// @Success      200      {object}  domain.Profile
// @Failure      400      {object}  map[string]string
// @Router       /api/profile/me/user/{user_id} [get]
func (h *ProfileHandler) GetByUserID(c echo.Context) error {
	profile, err := h.service.GetByUserID(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// AddExperience prepends a work history entry to the caller's profile.
//
// @Summary      Add a profile experience entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      addExperienceRequest  true  "Experience entry"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Router       /api/profile/me/experience [put]
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.AddExperience(c.Request().Context(), userID, ports.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveExperience deletes the experience entry with the given id. An
// unknown id leaves the profile unchanged and still answers 200.
//
// @Summary      Remove a profile experience entry
// @Tags         profile
// @Produce      json
// @Param        exp_id  path      string  true  "Experience entry id"
// @Success      200     {object}  domain.Profile
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Router       /api/profile/me/experience/{exp_id} [delete]
func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.RemoveExperience(c.Request().Context(), userID, c.Param("exp_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// AddEducation prepends an education entry to the caller's profile.
//
// @Summary      Add a profile education entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      addEducationRequest  true  "Education entry"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Router       /api/profile/me/education [put]
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addEducationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.AddEducation(c.Request().Context(), userID, ports.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveEducation deletes the education entry with the given id, with the
// same unknown-id behavior as RemoveExperience.
//
// @Summary      Remove a profile education entry
// @Tags         profile
// @Produce      json
// @Param        edu_id  path      string  true  "Education entry id"
// @Success      200     {object}  domain.Profile
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Router       /api/profile/me/education/{edu_id} [delete]
func (h *ProfileHandler) RemoveEducation(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.RemoveEducation(c.Request().Context(), userID, c.Param("edu_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
