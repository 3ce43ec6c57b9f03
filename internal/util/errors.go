package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountDisabled     = errors.New("account is disabled")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrScenarioNotFound    = errors.New("scenario not found")
	ErrInvalidScenarioType = errors.New("invalid simulation type")
	ErrInvalidSubmission   = errors.New("submission does not match scenario type")
	ErrInvalidReportType   = errors.New("invalid report type")
	ErrInvalidExportFormat = errors.New("invalid export format")
)
