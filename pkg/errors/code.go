package errors

// ErrorCode represents a unique error identifier
type ErrorCode int

// Error code ranges allocation:
// 10000-10999: System & Common errors
// 11000-11999: Option composition errors
// 12000-12999: Invocation errors
// 13000-13999: Report decoding errors

const (
	// ========== System & Common Errors (10000-10999) ==========

	// Success
	Success ErrorCode = 10000

	// Generic errors (10000-10099)
	InternalError ErrorCode = 10001
	InvalidParams ErrorCode = 10002
	NotFound      ErrorCode = 10003

	// Validation errors (10300-10399)
	ValidationFailed ErrorCode = 10300
	RequiredField    ErrorCode = 10301

	// ========== Option Composition Errors (11000-11999) ==========

	TypeMismatch  ErrorCode = 11000
	UnknownOption ErrorCode = 11001

	// ========== Invocation Errors (12000-12999) ==========

	NotAvailable     ErrorCode = 12000
	EmptyCommand     ErrorCode = 12001
	SpawnFailed      ErrorCode = 12002
	InvocationFailed ErrorCode = 12003

	// ========== Report Decoding Errors (13000-13999) ==========

	DecodeFailed       ErrorCode = 13000
	UnknownExceedValue ErrorCode = 13001
)

// errorMessages maps error codes to their default English messages
var errorMessages = map[ErrorCode]string{
	Success:       "Success",
	InternalError: "Internal error",
	InvalidParams: "Invalid parameters",
	NotFound:      "Resource not found",

	ValidationFailed: "Validation failed",
	RequiredField:    "Required field is empty",

	TypeMismatch:  "Options should be a mapping",
	UnknownOption: "Unknown option",

	NotAvailable:     "Sandbox executable not found",
	EmptyCommand:     "Command is empty",
	SpawnFailed:      "Failed to spawn sandbox process",
	InvocationFailed: "Sandbox process failed",

	DecodeFailed:       "Failed to decode sandbox report",
	UnknownExceedValue: "Unexpected EXCEED value in sandbox report",
}

// Message returns the default message for an error code
func (c ErrorCode) Message() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "Unknown error"
}
