package errors

import "fmt"

var (
	// JWT / tokens
	ErrInvalidSigningMethod = fmt.Errorf("잘못된 토큰 서명 방식입니다")
	ErrInvalidToken         = fmt.Errorf("유효하지 않은 토큰입니다")
	ErrTokenExpired         = fmt.Errorf("토큰이 만료되었습니다")
	ErrTokenIsNotRefresh    = fmt.Errorf("refresh 토큰이 아닙니다")
	ErrTokenIsNotAccess     = fmt.Errorf("access 토큰이 아닙니다")

	// Authentication
	ErrEmptyAuthHeader    = fmt.Errorf("인증 헤더가 없습니다")
	ErrInvalidAuthHeader  = fmt.Errorf("인증 헤더 형식이 잘못되었습니다")
	ErrInvalidCredentials = fmt.Errorf("아이디 또는 비밀번호가 올바르지 않습니다")
	ErrUnauthorized       = fmt.Errorf("로그인이 필요합니다")

	// Request context
	ErrUserIDNotFoundInContext = fmt.Errorf("요청 컨텍스트에서 사용자를 찾을 수 없습니다")

	// Common
	ErrNotFound   = fmt.Errorf("데이터를 찾을 수 없습니다")
	ErrBadRequest = fmt.Errorf("잘못된 요청입니다")
)

// HttpError carries an HTTP status code and a user-facing Korean message
// alongside the underlying cause. Controllers hand it to utils.ErrorResponse.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
