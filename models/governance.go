package models

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServiceInfo is the banner returned by the root endpoint.
type ServiceInfo struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// ValidationResult is the outcome of POST /api/validate.
type ValidationResult struct {
	Valid         bool     `json:"valid"`
	SanitizedData any      `json:"sanitized_data"`
	Warnings      []string `json:"warnings"`
}

// UploadResult describes an accepted upload.
type UploadResult struct {
	Filename string `json:"filename"`
	Size     int    `json:"size"`
	Status   string `json:"status"`
}

// ConfigUpdateResult echoes a sanitized configuration update.
type ConfigUpdateResult struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
