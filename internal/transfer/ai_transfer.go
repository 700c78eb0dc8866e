package transfer

type AIGenerationRequest struct {
	Prompt   string `json:"prompt"`
	Provider string `json:"provider"`
}

type AITextResponse struct {
	Content  string `json:"content"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

type AIImageResponse struct {
	URL      string `json:"url"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}
