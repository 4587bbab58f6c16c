package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeInvalidState    Code = "INVALID_STATE"
	CodeValidationError Code = "VALIDATION_ERROR"

	// Configuration
	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	// System errors
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Venue feed error codes: the aggregator task treats every one of these as
// fatal — there is no retry beyond the initial Connect.
const (
	CodeVenueConnectionFailed  Code = "VENUE_CONNECTION_FAILED"
	CodeVenueSubscriptionError Code = "VENUE_SUBSCRIPTION_ERROR"
	CodeVenueDecodeFailed      Code = "VENUE_DECODE_FAILED"
	CodeVenueError             Code = "VENUE_ERROR"
	CodeVenueDisconnected      Code = "VENUE_DISCONNECTED"
	CodeConversionFailed       Code = "CONVERSION_FAILED"
)
