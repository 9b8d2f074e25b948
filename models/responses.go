package models

// MessageResponse is the generic `{"message": ...}` payload used by delete
// endpoints and error responses.
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// PhotosResponse wraps a recipe's photo list for GET .../photos.
type PhotosResponse struct {
	Photos []string `json:"photos"`
}

// PhotoUploadResult is the body written into the streamed response of
// POST .../photos once the background upload finishes. The HTTP status was
// committed before the outcome was known, so Error in the body, not the
// status code, is the authoritative failure signal.
type PhotoUploadResult struct {
	Message   string `json:"message"`
	PhotoPath string `json:"photoPath,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Succeeded reports whether the background upload produced a photo path.
func (r PhotoUploadResult) Succeeded() bool {
	return r.Error == "" && r.PhotoPath != ""
}

// ExtractResponse is the payload of POST /api/extract-ingredients.
type ExtractResponse struct {
	Message     string       `json:"message"`
	Ingredients []Ingredient `json:"ingredients"`
}
