package request

// UpdateCountRequest is the request body for the delta-apply endpoint.
// Amount is a pointer so a missing field can be told apart from an
// explicit zero and rejected instead of silently coerced.
type UpdateCountRequest struct {
	Amount *int `json:"amount"`
}
