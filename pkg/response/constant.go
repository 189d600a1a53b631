package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
	NotFoundMessage     = "Not found"

	ValidationErrorCode     = 1
	UpstreamErrorCode       = 2
	ConfigErrorCode         = 3
	NetworkErrorCode        = 4
	InternalServerErrorCode = 500
)
