// Package gemini provides the Google Gemini generation client for Visionary.
package gemini

// geminiRequest represents a request to the generateContent API.
type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig *geminiGenConfig `json:"generationConfig,omitempty"`
}

// geminiContent represents a content block (user or model turn).
type geminiContent struct {
	Role  string       `json:"role,omitempty"` // "user" or "model"
	Parts []geminiPart `json:"parts"`
}

// geminiPart represents a part within content (text or inline image).
type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	Thought    *bool             `json:"thought,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

// geminiInlineData represents inline binary data in a request or response.
type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64 encoded
}

// geminiGenConfig holds generation configuration.
// Text requests set Temperature; image requests set the modalities and ImageConfig.
type geminiGenConfig struct {
	Temperature        *float32           `json:"temperature,omitempty"`
	ResponseModalities []string           `json:"responseModalities,omitempty"`
	ImageConfig        *geminiImageConfig `json:"imageConfig,omitempty"`
}

// geminiImageConfig holds image-specific generation config.
type geminiImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	// ImageSize is only accepted by the pro image model.
	ImageSize string `json:"imageSize,omitempty"`
}

// geminiResponse represents a response from the generateContent API.
type geminiResponse struct {
	Candidates     []geminiCandidate     `json:"candidates"`
	PromptFeedback *geminiPromptFeedback `json:"promptFeedback,omitempty"`
}

// geminiCandidate represents a response candidate.
type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

// geminiPromptFeedback is set when the prompt itself was blocked.
type geminiPromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// geminiErrorResponse represents an error response from the API.
type geminiErrorResponse struct {
	Error geminiError `json:"error"`
}

// geminiError contains error details.
type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
