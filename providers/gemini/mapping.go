package gemini

import (
	"strings"

	"github.com/samber/lo"

	"github.com/petal-labs/visionary/core"
)

// enhanceTemperature keeps rewrites varied but controlled.
const enhanceTemperature float32 = 0.7

// enhanceInstruction is prepended to the user's prompt by Enhance.
const enhanceInstruction = `Transform this short image prompt into a highly detailed, atmospheric, and cinematic description for an AI image generator. Focus on lighting, mood, artistic style (like oil painting, cinematic photography, or digital art), and specific emotional details related to the "year ending" and "struggling business" theme. Keep the response under 100 words.`

// imageModalities asks the image models for text and image parts.
var imageModalities = []string{"TEXT", "IMAGE"}

// buildEnhanceRequest wraps prompt in the rewrite instruction.
func buildEnhanceRequest(prompt string) *geminiRequest {
	temperature := enhanceTemperature
	return &geminiRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{{
				Text: enhanceInstruction + "\n\nOriginal Prompt: " + prompt,
			}},
		}},
		GenerationConfig: &geminiGenConfig{
			Temperature: &temperature,
		},
	}
}

// buildImageRequest creates a single-part text request with image config.
func buildImageRequest(req core.GenerationRequest, model imageModel) *geminiRequest {
	return &geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{
				Text: req.Prompt,
			}},
		}},
		GenerationConfig: &geminiGenConfig{
			ResponseModalities: imageModalities,
			ImageConfig: &geminiImageConfig{
				AspectRatio: string(req.AspectRatio),
				ImageSize:   model.size,
			},
		},
	}
}

// candidateParts returns the parts of the first candidate, or nil.
func candidateParts(resp *geminiResponse) []geminiPart {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

// extractText joins the non-thought text parts of the first candidate.
func extractText(resp *geminiResponse) string {
	texts := lo.FilterMap(candidateParts(resp), func(part geminiPart, _ int) (string, bool) {
		if part.Thought != nil && *part.Thought {
			return "", false
		}
		return part.Text, part.Text != ""
	})
	return strings.Join(texts, "")
}

// firstImage returns the first part carrying inline image data.
func firstImage(resp *geminiResponse) (core.ImageRef, bool) {
	part, ok := lo.Find(candidateParts(resp), func(part geminiPart) bool {
		return part.InlineData != nil && part.InlineData.Data != ""
	})
	if !ok {
		return "", false
	}
	return core.NewDataURI(part.InlineData.MimeType, part.InlineData.Data), true
}

// noImageDetail explains an image-less response for the error message.
func noImageDetail(resp *geminiResponse) string {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "prompt blocked: " + resp.PromptFeedback.BlockReason
	}
	if len(resp.Candidates) == 0 {
		return "no candidates returned"
	}
	if reason := resp.Candidates[0].FinishReason; reason != "" && reason != "STOP" {
		return "finish reason " + reason
	}
	if text := extractText(resp); text != "" {
		return "model replied with text only"
	}
	return ""
}
