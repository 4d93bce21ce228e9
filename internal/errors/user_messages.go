package errors

// User-friendly error messages
const (
	MsgInvalidParameters       = "The provided parameters are invalid. Please check your input and try again."
	MsgPlaceNotFound           = "No address details were found for that suggestion. Please pick another or enter the address manually."
	MsgAutocompleteUnavailable = "Address suggestions are not available right now. Manual address entry is available."
	MsgServiceUnavailable      = "We're unable to look up addresses right now. Please try again in a few minutes."
	MsgRateLimited             = "You're searching too quickly! Please wait a moment and try again."
	MsgUnauthorized            = "Please sign in to continue."
	MsgInternalError           = "Something went wrong on our end. Please try again later."
)
