package errs

import "errors"

var (
	InternalError          = errors.New("internal error")
	AssignmentNotFound     = errors.New("assignment not found")
	SubmissionNotFound     = errors.New("submission not found")
	NotSubmissionOwner     = errors.New("submission does not belong to caller")
	SubmissionNotCompleted = errors.New("submission is not marked complete")
	ValidationFailed       = errors.New("validation failed")
	UnsupportedLanguage    = errors.New("unsupported language")
)
