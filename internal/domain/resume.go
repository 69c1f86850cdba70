package domain

import "context"

// ResumeSnapshot is the joined input of the resume export. Every field
// may be nil/empty: a failed fetch of one collection degrades that
// collection only, never the whole export.
type ResumeSnapshot struct {
	Profile        *Profile
	SocialLinks    []SocialLink
	Experiences    []Experience
	Skills         []Skill
	Educations     []Education
	Certifications []Certification
	Languages      []Language
}

type ResumeUsecase interface {
	// GenerateATS renders the ATS resume PDF and returns its bytes plus
	// the download filename.
	GenerateATS(ctx context.Context) ([]byte, string, error)
}
