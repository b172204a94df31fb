package api

// Catalog search (explicit submit)
type SearchRequest struct {
	Search   string `json:"search"`
	Filter   string `json:"filter"`
	FilterBy string `json:"filter_by"` // "category" (default) or "brand"
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Rent Now
type RentNowRequest struct {
	VIN string `json:"vin"`
}

// Form field patch; values are raw input strings, validated per field.
type UpdateFormRequest struct {
	Fields map[string]string `json:"fields"`
}

type UpdateFormResponse struct {
	Errors map[string]string `json:"errors"`
	Valid  bool              `json:"valid"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
