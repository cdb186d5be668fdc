package handler

// Response bodies shared by handlers. swag reads the example tags when
// generating the OpenAPI document.

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Internal Server Error"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message" example:"User registered"`
}

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	Message string `json:"message" example:"File uploaded successfully!"`
	CID     string `json:"cid" example:"bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"`
}

// HealthResponse is returned by the probe endpoints.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"metadata store not reachable"`
}
