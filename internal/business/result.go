package business

// ErrorCode identifies a business rule violation. Codes are stable and
// part of the API contract; messages are advisory.
type ErrorCode string

const (
	ErrUsernameTaken         ErrorCode = "USERNAME_TAKEN"
	ErrEmailTaken            ErrorCode = "EMAIL_TAKEN"
	ErrInvalidActivationGuid ErrorCode = "INVALID_ACTIVATION_GUID"
	ErrInvalidCredentials    ErrorCode = "INVALID_CREDENTIALS"
	ErrUserIsNotActive       ErrorCode = "USER_IS_NOT_ACTIVE"
	ErrUserNotFound          ErrorCode = "USER_NOT_FOUND"
	ErrNoteNotFound          ErrorCode = "NOTE_NOT_FOUND"
	ErrCategoryNotFound      ErrorCode = "CATEGORY_NOT_FOUND"
	ErrCommentNotFound       ErrorCode = "COMMENT_NOT_FOUND"
	ErrForbidden             ErrorCode = "FORBIDDEN"
	ErrInvalidImageType      ErrorCode = "INVALID_IMAGE_TYPE"
)

type RuleError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Result carries an operation outcome together with any rule violations,
// in the order they were detected. A Result with errors still has a zero
// Value; transport failures travel as plain Go errors, never in here.
type Result[T any] struct {
	Value  T
	Errors []RuleError
}

func OK[T any](value T) *Result[T] {
	return &Result[T]{Value: value}
}

func Fail[T any](code ErrorCode, message string) *Result[T] {
	r := &Result[T]{}
	r.AddError(code, message)
	return r
}

func (r *Result[T]) AddError(code ErrorCode, message string) {
	r.Errors = append(r.Errors, RuleError{Code: code, Message: message})
}

func (r *Result[T]) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first rule error, which drives the HTTP status.
func (r *Result[T]) First() RuleError {
	if len(r.Errors) == 0 {
		return RuleError{}
	}
	return r.Errors[0]
}
