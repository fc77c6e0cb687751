package errors

// ErrorCode identifies a category of application error
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001

	// Analysis pipeline errors
	ErrorCode_CONFIGURATION ErrorCode = 2000
	ErrorCode_PROVIDER      ErrorCode = 2001
	ErrorCode_PARSE         ErrorCode = 2002
)

// String returns the string representation of an ErrorCode
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_CONFIGURATION:
		return "CONFIGURATION"
	case ErrorCode_PROVIDER:
		return "PROVIDER"
	case ErrorCode_PARSE:
		return "PARSE"
	default:
		return "UNKNOWN"
	}
}
