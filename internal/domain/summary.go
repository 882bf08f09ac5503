package domain

// RunSummary counts what a run did. It is never persisted.
type RunSummary struct {
	SubjectsVisited int
	SubjectsSkipped int
	VideosCompleted int
	VideosFailed    int
	VideosRejected  int
}

func (s RunSummary) VideosAttempted() int {
	return s.VideosCompleted + s.VideosFailed + s.VideosRejected
}
