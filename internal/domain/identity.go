package domain

// Identity is the authenticated student as returned by GetMe.
type Identity struct {
	UserID          int
	ImportID        string
	EducationPeriod string
	Subjects        []Subject
}

type Subject struct {
	ID   string
	Name string
}
