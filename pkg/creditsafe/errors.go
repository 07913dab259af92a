package creditsafe

import (
	"errors"
	"fmt"
)

// ErrLoginFailed indicates the provider returned no session token.
var ErrLoginFailed = errors.New("login to CreditSafe failed")

// Stage names a step of a run.
type Stage string

const (
	StageConfig    Stage = "config"
	StageCompanies Stage = "companies"
	StageAuth      Stage = "authenticate"
	StageOutput    Stage = "output"
	StageResolve   Stage = "resolve"
	StageFetch     Stage = "fetch"
	StageWrite     Stage = "write"
	StageSave      Stage = "save"
)

// StageError is a fatal error that ended a run.
type StageError struct {
	Stage Stage
	// Subject is the company key or file the stage was working on, if any.
	Subject string
	Err     error
}

func (e *StageError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s failed for %s: %v", e.Stage, e.Subject, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, subject string, err error) *StageError {
	return &StageError{
		Stage:   stage,
		Subject: subject,
		Err:     err,
	}
}
