// Package progress builds the "fully watched" payload for a video.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/autowatch/internal/domain"
)

// DefaultSegments is used when a video has no stored progress yet. The
// platform never reports how many segments a fresh video has; 20 is an
// overestimate carried over as-is and has not been checked against the server.
const DefaultSegments = 20

// ErrMalformedMarker indicates a stored progress marker is not a JSON array of numbers.
var ErrMalformedMarker = errors.New("malformed progress marker")

// MakeCompleteProgress returns a payload with every segment flag set to 1.
// The segment count follows existing when it is non-nil, otherwise DefaultSegments.
func MakeCompleteProgress(existing *string) (domain.CompletedProgress, error) {
	n := DefaultSegments
	if existing != nil {
		segments, err := ParseMarker(*existing)
		if err != nil {
			return domain.CompletedProgress{}, err
		}
		n = len(segments)
	}

	return domain.CompletedProgress{
		Progress:           EncodeMarker(n),
		WatchedPercentage:  domain.ProgressFull,
		Status:             domain.ProgressStatusComplete,
		PlayTimePercentage: domain.ProgressFull,
	}, nil
}

// ParseMarker decodes a marker such as "[1,0,0.5]".
func ParseMarker(marker string) ([]float64, error) {
	var segments []float64
	if err := json.Unmarshal([]byte(marker), &segments); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMarker, err)
	}
	if segments == nil {
		return nil, fmt.Errorf("%w: null", ErrMalformedMarker)
	}
	return segments, nil
}

// EncodeMarker returns a compact JSON array of n ones.
func EncodeMarker(n int) string {
	if n <= 0 {
		return "[]"
	}
	return "[" + strings.TrimSuffix(strings.Repeat("1,", n), ",") + "]"
}
