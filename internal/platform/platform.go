// Package platform maps the education platform's GraphQL operations onto
// domain types.
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/autowatch/internal/domain"
	"github.com/alexanderramin/autowatch/internal/gql"
)

// Client is bound to the two platform services.
type Client struct {
	progress gql.Client
	outline  gql.Client
}

// New returns a Client. progress serves videoProgress and
// storeDailyVideoProgress; outline serves GetMe and CourseOutline.
func New(progress, outline gql.Client) *Client {
	return &Client{progress: progress, outline: outline}
}

// FetchIdentity returns the signed-in student and their enrolled subjects.
func (c *Client) FetchIdentity(ctx context.Context) (*domain.Identity, error) {
	var resp getMeResponse
	if err := c.outline.Do(ctx, gql.Call{Operation: "GetMe", Query: getMeQuery}, &resp); err != nil {
		return nil, err
	}
	if resp.Me == nil {
		return nil, fmt.Errorf("GetMe: %w: missing me", ErrUnexpectedShape)
	}

	id := &domain.Identity{
		UserID:          int(resp.Me.ID),
		ImportID:        string(resp.Me.ImportID),
		EducationPeriod: string(resp.Me.EducationPeriod),
		Subjects:        make([]domain.Subject, 0, len(resp.Me.Subjects)),
	}
	if id.UserID == 0 {
		return nil, fmt.Errorf("GetMe: %w: missing user id", ErrUnexpectedShape)
	}
	for _, s := range resp.Me.Subjects {
		id.Subjects = append(id.Subjects, domain.Subject{ID: string(s.ID), Name: s.Name})
	}
	return id, nil
}

// FetchCourseOutline returns the units of one subject; filter is always sent as null.
func (c *Client) FetchCourseOutline(ctx context.Context, subjectID, educationPeriod string) (*domain.Outline, error) {
	var resp courseOutlineResponse
	call := gql.Call{
		Operation: "CourseOutline",
		Query:     courseOutlineQuery,
		Variables: map[string]any{
			"subjectId":       subjectID,
			"educationPeriod": educationPeriod,
			"filter":          nil,
		},
	}
	if err := c.outline.Do(ctx, call, &resp); err != nil {
		return nil, err
	}
	if resp.CourseOutline == nil {
		return nil, fmt.Errorf("CourseOutline: %w: missing courseOutline", ErrUnexpectedShape)
	}

	out := &domain.Outline{SubjectID: subjectID}
	for _, u := range resp.CourseOutline.Units {
		unit := domain.Unit{Name: u.Name}
		if u.Title != nil {
			unit.Title = *u.Title
		}
		for _, su := range u.Subunits {
			subunit := domain.Subunit{}
			for _, r := range su.Resources {
				subunit.Resources = append(subunit.Resources, domain.Resource{
					Kind:        domain.ResourceKind(r.Typename),
					VideoID:     string(r.VideoID),
					DisplayName: r.DisplayName,
				})
			}
			unit.Subunits = append(unit.Subunits, subunit)
		}
		out.Units = append(out.Units, unit)
	}
	return out, nil
}

// FetchVideoProgress returns nil, nil when the video has never been started.
func (c *Client) FetchVideoProgress(ctx context.Context, userID, videoID int) (*domain.VideoProgress, error) {
	var resp videoProgressResponse
	call := gql.Call{
		Operation: "videoProgress",
		Query:     videoProgressQuery,
		Variables: map[string]any{"userId": userID, "videoId": videoID},
	}
	if err := c.progress.Do(ctx, call, &resp); err != nil {
		return nil, err
	}
	return DecodeProgressPayload(resp.VideoProgress)
}

// DecodeProgressPayload unwraps the JSON document that videoProgress returns
// as a string. Nil, empty, "null" and "{}" mean no record.
func DecodeProgressPayload(raw *string) (*domain.VideoProgress, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" || s == "null" || s == "{}" {
		return nil, nil
	}

	var doc progressDocument
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProgress, err)
	}
	return &domain.VideoProgress{
		Progress:           string(doc.Progress),
		WatchedPercentage:  string(doc.WatchedPercentage),
		Status:             string(doc.Status),
		PlayTimePercentage: string(doc.PlayTimePercentage),
		CBPersonID:         string(doc.CBPersonID),
	}, nil
}

// StoreVideoProgress reports the server's acknowledgement flag.
func (c *Client) StoreVideoProgress(ctx context.Context, in domain.StoreProgressInput) (bool, error) {
	var resp storeProgressResponse
	call := gql.Call{
		Operation: "storeDailyVideoProgress",
		Query:     storeDailyVideoProgressMutation,
		Variables: map[string]any{
			"userId":             in.UserID,
			"videoId":            in.VideoID,
			"status":             in.Progress.Status,
			"cbPersonId":         in.CBPersonID,
			"progress":           in.Progress.Progress,
			"watchedPercentage":  in.Progress.WatchedPercentage,
			"playTimePercentage": in.Progress.PlayTimePercentage,
		},
	}
	if err := c.progress.Do(ctx, call, &resp); err != nil {
		return false, err
	}
	if resp.StoreDailyVideoProgress == nil {
		return false, fmt.Errorf("storeDailyVideoProgress: %w: missing acknowledgement", ErrUnexpectedShape)
	}
	return resp.StoreDailyVideoProgress.OK, nil
}

// ParseVideoID converts an outline video id to the integer the progress
// service expects.
func ParseVideoID(id string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVideoID, id)
	}
	return n, nil
}
