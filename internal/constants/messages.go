package constants

// User-facing messages. The auth messages are part of the API contract and
// mirrored by the frontend, so change them deliberately.
const (
	MsgAccessDenied       = "Access Denied. Please log in."
	MsgInvalidLogin       = "Invalid Login"
	MsgNotLoggedIn        = "A User is not logged in."
	MsgUserNotFound       = "User not found."
	MsgHomeNotFound       = "Home not found."
	MsgReviewNotFound     = "Review not found."
	MsgFavoriteNotFound   = "Favorite not found."
	MsgFavoriteRemoved    = "Favorite removed"
	MsgInternalError      = "An internal server error occurred"
	MsgEmptyRequestBody   = "Request body must not be empty"
	MsgMalformedJSON      = "Request body contains malformed JSON"
	MsgRequestTooLarge    = "Request body must not be larger than 1MB"
	MsgImageUploadFailed  = "Profile image upload failed"
	MsgMethodNotAllowed   = "Method not allowed"
	MsgServiceUnavailable = "Service is not healthy"
)
