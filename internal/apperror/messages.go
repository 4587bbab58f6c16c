package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeInvalidState:    "Invalid state for this operation",
	CodeValidationError: "Validation error",

	CodeConfigurationError: "Configuration error",

	CodeInternalError: "Internal server error",
	CodeUnknownError:  "An unknown error occurred",

	CodeVenueConnectionFailed:  "Failed to connect to venue feed",
	CodeVenueSubscriptionError: "Venue rejected the subscription request",
	CodeVenueDecodeFailed:      "Failed to decode venue feed frame",
	CodeVenueError:             "Venue reported an error event",
	CodeVenueDisconnected:      "Venue feed connection closed unexpectedly",
	CodeConversionFailed:       "Decimal value is not representable in the publication format",
}
