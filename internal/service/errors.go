package service

import "errors"

// ErrNoSubjectsSelected ends a run when the operator picks no subject.
var ErrNoSubjectsSelected = errors.New("no subjects selected")
