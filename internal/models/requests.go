package models

// ParseRequest is the body of POST /api/addresses/parse.
type ParseRequest struct {
	Input  string `json:"input" binding:"required"`
	Strict *bool  `json:"strict,omitempty"`
}

// StructuredParseRequest is the body of POST /api/addresses/structured.
type StructuredParseRequest struct {
	Place  PlaceDetail `json:"place"`
	Strict *bool       `json:"strict,omitempty"`
}

type SuggestResponse struct {
	Suggestions  []AddressSuggestion `json:"suggestions"`
	FallbackMode bool                `json:"fallback_mode"`
}

type StatusResponse struct {
	KeyValid     *bool  `json:"key_valid"`
	FallbackMode bool   `json:"fallback_mode"`
	Message      string `json:"message,omitempty"`
}
