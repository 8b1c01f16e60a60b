package dto

type ChatRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

type ChatResponse struct {
	Source   string `json:"source"`
	Response string `json:"response"`
	Intent   string `json:"intent,omitempty"`
}
