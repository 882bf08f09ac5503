package testutil

import (
	"fmt"

	"github.com/alexanderramin/autowatch/internal/domain"
)

// NewTestIdentity returns the identity used across scenario tests.
func NewTestIdentity(subjects ...domain.Subject) *domain.Identity {
	if len(subjects) == 0 {
		subjects = []domain.Subject{{ID: "sub1", Name: "Bio"}}
	}
	return &domain.Identity{
		UserID:          42,
		ImportID:        "ABC123",
		EducationPeriod: "2026-HT",
		Subjects:        subjects,
	}
}

// Unit options
type UnitOption func(*domain.Unit)

func WithTitle(title string) UnitOption {
	return func(u *domain.Unit) {
		u.Title = title
	}
}

// WithVideos appends a subunit holding one embedded video per id.
func WithVideos(ids ...string) UnitOption {
	return func(u *domain.Unit) {
		su := domain.Subunit{}
		for _, id := range ids {
			su.Resources = append(su.Resources, Video(id))
		}
		u.Subunits = append(u.Subunits, su)
	}
}

// WithResources appends a subunit holding the given resources as-is.
func WithResources(rs ...domain.Resource) UnitOption {
	return func(u *domain.Unit) {
		u.Subunits = append(u.Subunits, domain.Subunit{Resources: rs})
	}
}

func NewTestUnit(name string, opts ...UnitOption) domain.Unit {
	u := domain.Unit{Name: name}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func NewTestOutline(subjectID string, units ...domain.Unit) *domain.Outline {
	return &domain.Outline{SubjectID: subjectID, Units: units}
}

// Video returns an embedded video resource named after its id.
func Video(id string) domain.Resource {
	return domain.Resource{
		Kind:        domain.ResourceEmbeddedVideo,
		VideoID:     id,
		DisplayName: fmt.Sprintf("Video %s", id),
	}
}

// Quiz returns a resource that is not a video.
func Quiz() domain.Resource {
	return domain.Resource{Kind: "Quiz"}
}
