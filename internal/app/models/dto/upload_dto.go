package dto

// UploadResponse carries the public URL of a stored file
type UploadResponse struct {
	URL string `json:"url"`
}
