package model

import "errors"

// Validation errors surfaced to the candidate. All of them are local and
// non-fatal: the session stays in its current stage and nothing is mutated.
var (
	ErrInvalidFileType         = errors.New("please upload a PDF or DOCX file only")
	ErrFileTooLarge            = errors.New("file size must be less than 5MB")
	ErrIncompleteCandidateInfo = errors.New("please provide all required information: name, email, and phone number")
	ErrInvalidEmailFormat      = errors.New("please enter a valid email address")
	ErrEmptyAnswerSubmission   = errors.New("please enter your answer before submitting")
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidStage    = errors.New("operation not allowed in the current stage")
)

// ErrorKind names a validation failure for event sinks and API error codes.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFileType):
		return "INVALID_FILE_TYPE"
	case errors.Is(err, ErrFileTooLarge):
		return "FILE_TOO_LARGE"
	case errors.Is(err, ErrIncompleteCandidateInfo):
		return "INCOMPLETE_CANDIDATE_INFO"
	case errors.Is(err, ErrInvalidEmailFormat):
		return "INVALID_EMAIL_FORMAT"
	case errors.Is(err, ErrEmptyAnswerSubmission):
		return "EMPTY_ANSWER_SUBMISSION"
	case errors.Is(err, ErrSessionNotFound):
		return "SESSION_NOT_FOUND"
	case errors.Is(err, ErrInvalidStage):
		return "INVALID_STAGE"
	default:
		return "INTERNAL_ERROR"
	}
}

// IsValidation reports whether err is one of the recoverable input errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidFileType) ||
		errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrIncompleteCandidateInfo) ||
		errors.Is(err, ErrInvalidEmailFormat) ||
		errors.Is(err, ErrEmptyAnswerSubmission)
}
