package gemini

import "github.com/petal-labs/visionary/core"

// Model constants for the Gemini models Visionary calls.
const (
	// ModelEnhance rewrites prompts.
	ModelEnhance core.ModelID = "gemini-3-flash-preview"

	// Image generation models (Nano Banana)
	ModelFastImage core.ModelID = "gemini-2.5-flash-image"     // Nano Banana - fast/efficient
	ModelProImage  core.ModelID = "gemini-3-pro-image-preview" // Nano Banana Pro - higher fidelity
)

// ProImageSize is the resolution tier requested from the pro image model.
const ProImageSize = "1K"

// ModelInfo describes a model and what Visionary uses it for.
type ModelInfo struct {
	ID          core.ModelID   `json:"id"`
	DisplayName string         `json:"display_name"`
	Operation   core.Operation `json:"operation"`
	HighQuality bool           `json:"high_quality,omitempty"`
}

var models = []ModelInfo{
	{
		ID:          ModelEnhance,
		DisplayName: "Gemini 3 Flash Preview",
		Operation:   core.OperationEnhance,
	},
	{
		ID:          ModelFastImage,
		DisplayName: "Gemini 2.5 Flash Image (Nano Banana)",
		Operation:   core.OperationGenerate,
	},
	{
		ID:          ModelProImage,
		DisplayName: "Gemini 3 Pro Image Preview (Nano Banana Pro)",
		Operation:   core.OperationGenerate,
		HighQuality: true,
	},
}

// imageModel is the outcome of model selection for a generate call.
type imageModel struct {
	id   core.ModelID
	size string // empty means the backend default
}

// selectImageModel maps the quality flag to a model and size tier.
func selectImageModel(highQuality bool) imageModel {
	if highQuality {
		return imageModel{id: ModelProImage, size: ProImageSize}
	}
	return imageModel{id: ModelFastImage}
}
