package errors

// ValidationError reports a rejected request field.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// HTTPError carries the response code, message and status of a failed request.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}
