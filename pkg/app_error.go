package pkg

// AppError is the transport-facing error envelope. Handlers build one from a
// domain error and serialize it via ToHTTPError.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
	HTTPStatus int    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewDomainError wraps an underlying error with a stable code and HTTP status.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError without an underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body returned to clients on failure.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
