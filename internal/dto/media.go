package dto

type UploadResponse struct {
	PublicID     string `json:"public_id"`
	ResourceType string `json:"resource_type"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Format       string `json:"format"`
}

type SignURLResponse struct {
	URL string `json:"url"`
}

type UploadSignatureRequest struct {
	Folder    string `json:"folder"`
	PublicID  string `json:"public_id"`
	Overwrite *bool  `json:"overwrite"`
	Type      string `json:"type"`
}

type UploadSignatureResponse struct {
	UploadURL  string `json:"upload_url"`
	Timestamp  int64  `json:"timestamp"`
	Signature  string `json:"signature"`
	APIKey     string `json:"api_key"`
	CloudName  string `json:"cloud_name"`
	AccessMode string `json:"access_mode"`
	Folder     string `json:"folder,omitempty"`
	PublicID   string `json:"public_id,omitempty"`
	Overwrite  bool   `json:"overwrite"`
}
