package domain

import "time"

// ProfileOwner carries the user fields surfaced alongside a profile
// (the name/avatar cross-reference resolved on every retrieval).
type ProfileOwner struct {
	ID     string `json:"id" bson:"id"`
	Name   string `json:"name" bson:"-"`
	Avatar string `json:"avatar" bson:"-"`
}

// SocialLinks holds the optional social media URLs of a profile.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
}

// Experience is an embedded work history entry. Entries are ordered
// most-recently-added first.
type Experience struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Company     string    `json:"company" bson:"company"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	From        time.Time `json:"from" bson:"from"`
	To          time.Time `json:"to,omitzero" bson:"to,omitempty"`
	Current     bool      `json:"current" bson:"current"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
}

// Education is an embedded education history entry, ordered like Experience.
type Education struct {
	ID           string    `json:"id" bson:"id"`
	School       string    `json:"school" bson:"school"`
	Degree       string    `json:"degree" bson:"degree"`
	FieldOfStudy string    `json:"fieldofstudy" bson:"fieldofstudy"`
	From         time.Time `json:"from" bson:"from"`
	To           time.Time `json:"to,omitzero" bson:"to,omitempty"`
	Current      bool      `json:"current" bson:"current"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
}

// Profile is the per-user profile aggregate. At most one profile exists per
// user (unique index on the user reference).
type Profile struct {
	ID         string       `json:"id" bson:"_id,omitempty"`
	User       ProfileOwner `json:"user" bson:"-"`
	UserID     string       `json:"-" bson:"user"`
	Company    string       `json:"company,omitempty" bson:"company,omitempty"`
	Location   string       `json:"location,omitempty" bson:"location,omitempty"`
	Website    string       `json:"website,omitempty" bson:"website,omitempty"`
	Bio        string       `json:"bio,omitempty" bson:"bio,omitempty"`
	Status     string       `json:"status" bson:"status"`
	GithubUser string       `json:"githubusername,omitempty" bson:"githubusername,omitempty"`
	Skills     []string     `json:"skills" bson:"skills"`
	Social     SocialLinks  `json:"social" bson:"social"`
	Experience []Experience `json:"experience" bson:"experience"`
	Education  []Education  `json:"education" bson:"education"`
	CreatedAt  time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" bson:"updated_at"`
}

// ProfileUpdate is the sparse change set submitted on profile upsert.
// Status and Skills are always present (required inputs); pointer fields are
// applied only when non-nil so a partial submission never clears stored data.
type ProfileUpdate struct {
	Status     string
	Skills     []string
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

// Apply merges the update into p, overwriting only present fields.
func (u ProfileUpdate) Apply(p *Profile) {
	p.Status = u.Status
	p.Skills = u.Skills
	setIf(&p.Company, u.Company)
	setIf(&p.Location, u.Location)
	setIf(&p.Website, u.Website)
	setIf(&p.Bio, u.Bio)
	setIf(&p.GithubUser, u.GithubUser)
	setIf(&p.Social.Youtube, u.Youtube)
	setIf(&p.Social.Twitter, u.Twitter)
	setIf(&p.Social.Instagram, u.Instagram)
	setIf(&p.Social.Linkedin, u.Linkedin)
	setIf(&p.Social.Facebook, u.Facebook)
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// AddExperience prepends e so the newest entry is first.
func (p *Profile) AddExperience(e Experience) {
	p.Experience = append([]Experience{e}, p.Experience...)
}

// RemoveExperience removes the entry with the given id. An unknown id leaves
// the list untouched; the caller cannot distinguish that case.
func (p *Profile) RemoveExperience(id string) {
	kept := p.Experience[:0]
	for _, e := range p.Experience {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	p.Experience = kept
}

// AddEducation prepends e so the newest entry is first.
func (p *Profile) AddEducation(e Education) {
	p.Education = append([]Education{e}, p.Education...)
}

// RemoveEducation removes the entry with the given id, silently ignoring
// unknown ids like RemoveExperience.
func (p *Profile) RemoveEducation(id string) {
	kept := p.Education[:0]
	for _, e := range p.Education {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	p.Education = kept
}
