package analysis

import (
	"errors"
	"fmt"
)

// Caller-visible failures. The first two are guard rejections the user can
// correct; ErrAnalysisFailed wraps anything unexpected so no other error
// type escapes the engine.
var (
	ErrInsufficientContent = errors.New("resume content is empty or too short to analyze")
	ErrNotAResume          = errors.New("the uploaded document does not appear to be a resume")
	ErrAnalysisFailed      = errors.New("resume analysis failed")
)

// AnalysisError carries the failing operation and detail alongside the base
// error, so logs stay informative while errors.Is keeps working.
type AnalysisError struct {
	Op      string
	BaseErr error
	Detail  string
}

func (e *AnalysisError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (op:%s): %s", e.BaseErr, e.Op, e.Detail)
	}
	return fmt.Sprintf("%s (op:%s)", e.BaseErr, e.Op)
}

func (e *AnalysisError) Unwrap() error {
	return e.BaseErr
}

// Is supports comparison against the base sentinel errors.
func (e *AnalysisError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewInsufficientContentError reports a guard rejection for thin content.
func NewInsufficientContentError(detail string) error {
	return &AnalysisError{
		Op:      "guard",
		BaseErr: ErrInsufficientContent,
		Detail:  detail,
	}
}

// NewNotAResumeError reports a classifier rejection.
func NewNotAResumeError(detail string) error {
	return &AnalysisError{
		Op:      "classify",
		BaseErr: ErrNotAResume,
		Detail:  detail,
	}
}

// NewAnalysisFailedError wraps an unexpected internal fault.
func NewAnalysisFailedError(op, detail string) error {
	return &AnalysisError{
		Op:      op,
		BaseErr: ErrAnalysisFailed,
		Detail:  detail,
	}
}
