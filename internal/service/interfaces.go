package service

import (
	"context"

	"github.com/alexanderramin/autowatch/internal/domain"
)

// Platform is the set of remote operations a run needs.
type Platform interface {
	FetchIdentity(ctx context.Context) (*domain.Identity, error)
	FetchCourseOutline(ctx context.Context, subjectID, educationPeriod string) (*domain.Outline, error)
	FetchVideoProgress(ctx context.Context, userID, videoID int) (*domain.VideoProgress, error)
	StoreVideoProgress(ctx context.Context, in domain.StoreProgressInput) (bool, error)
}

// PlatformFactory binds a Platform to a resolved bearer token.
type PlatformFactory func(token string) Platform

type TokenResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// Selector is the interactive side of a run.
type Selector interface {
	SelectSubjects(ctx context.Context, subjects []domain.Subject) ([]domain.Subject, error)
	// SelectUnits returns indices into units.
	SelectUnits(ctx context.Context, subject domain.Subject, units []domain.Unit) ([]int, error)
}

type WatchService interface {
	Run(ctx context.Context) (*domain.RunSummary, error)
}
