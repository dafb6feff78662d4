package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrShutdown         = NewError(ServiceUnavailable, "server is shutting down")
	ErrGracefulShutdown = NewError(ServiceUnavailable, "graceful shutdown")

	ErrBadRequest          = NewError(BadRequest, "bad request")
	ErrBadRequestLine      = NewError(BadRequest, "malformed request line")
	ErrMethodNotSupported  = NewError(BadRequest, "request method is not supported")
	ErrBadProtoToken       = NewError(BadRequest, "malformed protocol version")
	ErrUnsupportedVersion  = NewError(BadRequest, "this server only supports HTTP version 1.1.")
	ErrTooLargeHead        = NewError(BadRequest, "request head section is too large")
	ErrBodyTooLarge        = NewError(BadRequest, "request body is too large")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrConflict            = NewError(Conflict, "conflict")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
