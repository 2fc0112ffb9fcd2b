package countries

import "time"

// SearchRequest is the query string of the search endpoints.
type SearchRequest struct {
	Query string `form:"q"`
}

// CardResponse is one rendered grid entry.
type CardResponse struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	FlagURL string `json:"flag_url"`
	FlagAlt string `json:"flag_alt"`
}

// StatusResponse describes the load state of the country list.
type StatusResponse struct {
	Loading  bool       `json:"loading"`
	Failed   bool       `json:"failed"`
	Total    int        `json:"total"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
}

// ToCardResponseList converts cards for the JSON API.
func ToCardResponseList(cards []Card) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i, c := range cards {
		out[i] = CardResponse(c)
	}
	return out
}
