package platform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Responses

type getMeResponse struct {
	Me *struct {
		ID              numericID `json:"id"`
		ImportID        text      `json:"importId"`
		EducationPeriod text      `json:"educationPeriod"`
		Subjects        []struct {
			ID   text   `json:"id"`
			Name string `json:"name"`
		} `json:"subjects"`
	} `json:"me"`
}

type courseOutlineResponse struct {
	CourseOutline *struct {
		Units []struct {
			Name     string  `json:"name"`
			Title    *string `json:"title"`
			Subunits []struct {
				Resources []struct {
					Typename    string `json:"__typename"`
					VideoID     text   `json:"videoId"`
					DisplayName string `json:"displayName"`
				} `json:"resources"`
			} `json:"subunits"`
		} `json:"units"`
	} `json:"courseOutline"`
}

type videoProgressResponse struct {
	VideoProgress *string `json:"videoProgress"`
}

// progressDocument is the object encoded inside videoProgress.
type progressDocument struct {
	Progress           text `json:"progress"`
	WatchedPercentage  text `json:"watchedPercentage"`
	Status             text `json:"status"`
	PlayTimePercentage text `json:"playTimePercentage"`
	CBPersonID         text `json:"cbPersonId"`
}

type storeProgressResponse struct {
	StoreDailyVideoProgress *struct {
		OK bool `json:"ok"`
	} `json:"storeDailyVideoProgress"`
}

// numericID accepts both 42 and "42"; GraphQL servers serialize ID either way.
type numericID int

func (n *numericID) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "null" || s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("numeric id %s: %w", b, err)
	}
	*n = numericID(v)
	return nil
}

// text keeps scalars as their textual form: strings are unquoted, numbers and
// arrays are kept verbatim, null becomes "".
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
	default:
		*t = text(b)
	}
	return nil
}
