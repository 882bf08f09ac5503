package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/alexanderramin/autowatch/internal/domain"
	"github.com/alexanderramin/autowatch/internal/platform"
	"github.com/alexanderramin/autowatch/internal/progress"
)

type watchService struct {
	tokens   TokenResolver
	connect  PlatformFactory
	selector Selector
	log      *zap.Logger
	observer UseCaseObserver
}

func NewWatchService(tokens TokenResolver, connect PlatformFactory, selector Selector, log *zap.Logger, observers ...UseCaseObserver) WatchService {
	if log == nil {
		log = zap.NewNop()
	}
	return &watchService{
		tokens:   tokens,
		connect:  connect,
		selector: selector,
		log:      log,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Run walks credential -> identity -> subjects -> units -> videos, one step
// at a time. A missing token, a failed identity fetch, an empty subject
// selection, an aborted prompt or a cancelled ctx end the run early; other
// failures below the subject level are logged and skipped.
func (s *watchService) Run(ctx context.Context) (summary *domain.RunSummary, err error) {
	startedAt := time.Now()
	summary = &domain.RunSummary{}
	defer func() {
		observeUseCase(ctx, s.observer, "watch_run", startedAt, err, map[string]any{
			"subjects_visited": summary.SubjectsVisited,
			"subjects_skipped": summary.SubjectsSkipped,
			"videos_completed": summary.VideosCompleted,
			"videos_failed":    summary.VideosFailed,
			"videos_rejected":  summary.VideosRejected,
		})
	}()

	token, err := s.tokens.Resolve(ctx)
	if err != nil {
		return summary, err
	}
	api := s.connect(token)

	identity, err := api.FetchIdentity(ctx)
	if err != nil {
		return summary, fmt.Errorf("fetching identity: %w", err)
	}
	s.log.Info("signed in",
		zap.Int("user_id", identity.UserID),
		zap.String("education_period", identity.EducationPeriod),
		zap.Int("subjects", len(identity.Subjects)),
	)

	subjects, err := s.selector.SelectSubjects(ctx, identity.Subjects)
	if err != nil {
		return summary, fmt.Errorf("selecting subjects: %w", err)
	}
	if len(subjects) == 0 {
		return summary, ErrNoSubjectsSelected
	}

	for _, subject := range subjects {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if err := s.runSubject(ctx, api, identity, subject, summary); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// runSubject only returns an error when the operator aborts the unit prompt
// or ctx is cancelled.
func (s *watchService) runSubject(ctx context.Context, api Platform, identity *domain.Identity, subject domain.Subject, summary *domain.RunSummary) error {
	summary.SubjectsVisited++
	log := s.log.With(zap.String("subject", subject.Name), zap.String("subject_id", subject.ID))

	outline, err := api.FetchCourseOutline(ctx, subject.ID, identity.EducationPeriod)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Error("fetching course outline failed, skipping subject", zap.Error(err))
		summary.SubjectsSkipped++
		return nil
	}
	if len(outline.Units) == 0 {
		log.Info("no units in course outline, skipping subject")
		summary.SubjectsSkipped++
		return nil
	}

	picked, err := s.selector.SelectUnits(ctx, subject, outline.Units)
	if err != nil {
		return fmt.Errorf("selecting units for %s: %w", subject.Name, err)
	}
	if len(picked) == 0 {
		log.Info("no units selected, skipping subject")
		summary.SubjectsSkipped++
		return nil
	}

	for _, idx := range picked {
		if idx < 0 || idx >= len(outline.Units) {
			log.Warn("ignoring unit index out of range", zap.Int("index", idx))
			continue
		}
		unit := outline.Units[idx]
		unitLog := log.With(zap.String("unit", unit.Label()))
		for _, su := range unit.Subunits {
			for _, r := range su.Resources {
				if !r.IsVideo() {
					continue
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := s.completeVideo(ctx, api, identity, r, unitLog, summary); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// completeVideo records the outcome in summary and the log. It only returns
// an error when ctx was cancelled during the calls; that video is not counted.
func (s *watchService) completeVideo(ctx context.Context, api Platform, identity *domain.Identity, video domain.Resource, log *zap.Logger, summary *domain.RunSummary) error {
	log = log.With(zap.String("video_id", video.VideoID), zap.String("video", video.DisplayName))

	ok, err := s.storeComplete(ctx, api, identity, video)
	switch {
	case err != nil && ctx.Err() != nil:
		return ctx.Err()
	case err != nil:
		summary.VideosFailed++
		log.Error("marking video watched failed", zap.Error(err))
	case !ok:
		summary.VideosRejected++
		log.Error("platform rejected progress update")
	default:
		summary.VideosCompleted++
		log.Info("video marked watched")
	}
	return nil
}

func (s *watchService) storeComplete(ctx context.Context, api Platform, identity *domain.Identity, video domain.Resource) (bool, error) {
	videoID, err := platform.ParseVideoID(video.VideoID)
	if err != nil {
		return false, err
	}

	existing, err := api.FetchVideoProgress(ctx, identity.UserID, videoID)
	if err != nil {
		return false, fmt.Errorf("fetching progress: %w", err)
	}

	var marker *string
	cbPersonID := identity.ImportID
	if existing != nil {
		if existing.Progress != "" {
			marker = &existing.Progress
		}
		if existing.CBPersonID != "" {
			cbPersonID = existing.CBPersonID
		}
	}

	completed, err := progress.MakeCompleteProgress(marker)
	if err != nil {
		return false, err
	}

	ok, err := api.StoreVideoProgress(ctx, domain.StoreProgressInput{
		UserID:     identity.UserID,
		CBPersonID: cbPersonID,
		VideoID:    videoID,
		Progress:   completed,
	})
	if err != nil {
		return false, fmt.Errorf("storing progress: %w", err)
	}
	return ok, nil
}
