package errors

import "fmt"

// Error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeLevelLocked       = "LEVEL_LOCKED"
	ErrCodeRetryLimit        = "RETRY_LIMIT_EXCEEDED"
	ErrCodeAnswerCount       = "ANSWER_COUNT_MISMATCH"
	ErrCodeAlreadyOwned      = "ALREADY_OWNED"
	ErrCodeInsufficientFunds = "INSUFFICIENT_FUNDS"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "LEVEL_LOCKED")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target carries the same error code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// NewUnauthorizedError creates a new UNAUTHORIZED error
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Status:  401,
	}
}

// NewLevelLockedError signals that a level's prerequisites are not met.
// This is an expected outcome, not an exceptional one.
func NewLevelLockedError(levelID int) *AppError {
	return &AppError{
		Code:    ErrCodeLevelLocked,
		Message: fmt.Sprintf("level %d is locked: prerequisites not completed", levelID),
		Status:  403,
	}
}

// NewRetryLimitError signals that the retry cap for a level is exhausted.
func NewRetryLimitError(levelID, maxRetries int) *AppError {
	return &AppError{
		Code:    ErrCodeRetryLimit,
		Message: fmt.Sprintf("level %d: maximum of %d attempts reached", levelID, maxRetries),
		Status:  403,
	}
}

// NewAnswerCountError signals a submission with the wrong number of answers.
func NewAnswerCountError(got, want int) *AppError {
	return &AppError{
		Code:    ErrCodeAnswerCount,
		Message: fmt.Sprintf("expected %d answers, got %d", want, got),
		Status:  400,
	}
}

// NewAlreadyOwnedError signals a purchase of an already-owned reward.
func NewAlreadyOwnedError(rewardID string) *AppError {
	return &AppError{
		Code:    ErrCodeAlreadyOwned,
		Message: fmt.Sprintf("reward %s already purchased", rewardID),
		Status:  409,
	}
}

// NewInsufficientFundsError signals a purchase the player cannot afford.
func NewInsufficientFundsError(cost, coins int) *AppError {
	return &AppError{
		Code:    ErrCodeInsufficientFunds,
		Message: fmt.Sprintf("reward costs %d coins, player has %d", cost, coins),
		Status:  402,
	}
}
