package transfer

// UploadFile is one locally selected media file headed for the upload
// endpoint. Data is the raw file content.
type UploadFile struct {
	Name      string
	Data      []byte
	PostID    string
	ProjectID string
}

type UploadResponse struct {
	Path string `json:"path,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Location prefers the absolute URL when the server supplied one.
func (r *UploadResponse) Location() string {
	if r.URL != "" {
		return r.URL
	}
	return r.Path
}
