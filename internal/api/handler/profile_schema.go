package handler

import "time"

// --- Request types ---

// upsertProfileRequest is the profile submission. Optional fields are
// pointers so an absent field is distinguishable from an empty one and never
// clears stored data. Skills is a comma-separated string on the wire.
type upsertProfileRequest struct {
	Status         string  `json:"status" validate:"required"`
	Skills         string  `json:"skills" validate:"required"`
	Company        *string `json:"company"`
	Location       *string `json:"location"`
	Website        *string `json:"website"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Instagram      *string `json:"instagram"`
	Linkedin       *string `json:"linkedin"`
	Facebook       *string `json:"facebook"`
}

type addExperienceRequest struct {
	Title       string    `json:"title"   validate:"required"`
	Company     string    `json:"company" validate:"required"`
	Location    string    `json:"location"`
	From        time.Time `json:"from"    validate:"required"`
	To          time.Time `json:"to"`
	Current     bool      `json:"current"`
	Description string    `json:"description"`
}

type addEducationRequest struct {
	School       string    `json:"school"       validate:"required"`
	Degree       string    `json:"degree"       validate:"required"`
	FieldOfStudy string    `json:"fieldofstudy" validate:"required"`
	From         time.Time `json:"from"         validate:"required"`
	To           time.Time `json:"to"`
	Current      bool      `json:"current"`
	Description  string    `json:"description"`
}
