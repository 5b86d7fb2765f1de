package test

// ClassifyRequest represents a classify request
type ClassifyRequest struct {
	Mode string `json:"mode" binding:"required,oneof=chat voice"`
	Text string `json:"text" binding:"required"`
}

// ClassifyResponse represents a classify response
type ClassifyResponse struct {
	Success    bool   `json:"success"`
	Mode       string `json:"mode"`
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
	Intent     string `json:"intent,omitempty"`
	Command    string `json:"command,omitempty"`
	Trigger    string `json:"trigger,omitempty"`
}

// ResetSessionRequest represents a reset session request
type ResetSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	UserID    string `json:"user_id"`
}

// ResetSessionResponse represents a reset session response
type ResetSessionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
