package dto

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is the body for acknowledged actions; Message carries the
// user-visible notification text ("Sale of UGX 1,249,500 completed ...").
type MessageResponse struct {
	Message string `json:"message"`
}
