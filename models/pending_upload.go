package models

// Pending upload lifecycle statuses. A record is created as
// UploadStatusUploading before the network request starts and moves to
// exactly one of the terminal statuses.
const (
	UploadStatusUploading = "uploading"
	UploadStatusCompleted = "completed"
	UploadStatusError     = "error"
)

// PendingUpload is the durable client-side record of one photo upload.
// It exists so that an upload still in flight survives the editing session
// that started it: on the next visit the completed photo path can be folded
// into the recipe, and stale in-flight records can be cleared in favour of
// server truth.
type PendingUpload struct {
	// TempID is the client-generated temporary photo identifier
	// ("temp-<uuid>") that stands in for the photo until the server
	// assigns a storage path.
	TempID string `json:"temp_id"`

	// RecipeID scopes the record to one recipe.
	RecipeID int64 `json:"recipe_id"`

	// Timestamp is the unix-millisecond time the upload started.
	Timestamp int64 `json:"timestamp"`

	// Filename is the original name of the local file, kept for display
	// and debugging only.
	Filename string `json:"filename"`

	// Status is one of the UploadStatus* constants.
	Status string `json:"status"`

	// PhotoPath is the server-assigned storage path, set once Status is
	// UploadStatusCompleted.
	PhotoPath string `json:"photo_path,omitempty"`

	// Error holds the failure message when Status is UploadStatusError.
	Error string `json:"error,omitempty"`
}
