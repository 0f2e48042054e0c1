package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition is a business error code with its default message.
type Definition struct {
	Code    string
	Message string
}

// Time log errors.
var (
	InvalidTimeRange   = Definition{Code: "INVALID_TIME_RANGE", Message: "Time out must be later than time in"}
	DuplicateOrInvalid = Definition{Code: "DUPLICATE_OR_INVALID", Message: "Time log is missing required fields or has an invalid time range"}
	NotFound           = Definition{Code: "NOT_FOUND", Message: "Record not found"}
)

// Progress projection errors.
var (
	InvalidConfiguration = Definition{Code: "INVALID_CONFIGURATION", Message: "Required hours must be a positive number"}
)

// Infrastructure errors.
var (
	StoreUnavailable = Definition{Code: "STORE_UNAVAILABLE", Message: "Storage backend unavailable"}
	InvalidRequest   = Definition{Code: "INVALID_REQUEST", Message: "Request payload invalid"}
	Unauthorized     = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
)
