package domain

const (
	ProgressStatusComplete = "COMPLETE"
	ProgressFull           = "1.0"
)

// VideoProgress is the stored watch state of one video for one user.
type VideoProgress struct {
	Progress           string // JSON array of per-segment flags, e.g. "[1,0,0]"
	WatchedPercentage  string
	Status             string
	PlayTimePercentage string
	CBPersonID         string
}

// CompletedProgress is the payload written back to mark a video fully watched.
type CompletedProgress struct {
	Progress           string
	WatchedPercentage  string
	Status             string
	PlayTimePercentage string
}

// StoreProgressInput carries the arguments of storeDailyVideoProgress.
type StoreProgressInput struct {
	UserID     int
	CBPersonID string
	VideoID    int
	Progress   CompletedProgress
}
