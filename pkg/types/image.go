package types

import (
	"encoding/json"
	"errors"
)

// ImageGenerationRequest is the body of POST /images/generations.
//
// Optional fields resolved by the builder report their defaults through
// Value() but are only serialized when set explicitly.
type ImageGenerationRequest struct {
	// Prompt describes the desired image. dall-e-3 accepts up to 4000 characters.
	Prompt string     `json:"prompt"`
	Model  ImageModel `json:"model"`
	// N is the number of images. dall-e-3 only supports 1.
	N              Optional[int]                 `json:"n,omitzero"`
	Quality        Optional[ImageQuality]        `json:"quality,omitzero"`
	ResponseFormat Optional[ImageResponseFormat] `json:"response_format,omitzero"`
	Size           Optional[ImageSize]           `json:"size,omitzero"`
	Style          Optional[ImageStyle]          `json:"style,omitzero"`
	// User identifies the end user so the API can monitor abuse.
	User Optional[string] `json:"user,omitzero"`
}

// Validate repeats the builder's required field checks.
func (r ImageGenerationRequest) Validate() error {
	if r.Prompt == "" {
		return &MissingFieldError{Request: imageRequestName, Field: "prompt"}
	}
	return nil
}

type ImageGenerationResponse struct {
	Created int64            `json:"created"`
	Data    []GeneratedImage `json:"data"`
}

// ErrImagePayload is returned when a generated image carries both or neither
// of url and b64_json.
var ErrImagePayload = errors.New("generated image must carry exactly one of url and b64_json")

// GeneratedImage is one generated image, returned either inline or by URL.
type GeneratedImage struct {
	B64JSON string `json:"b64_json,omitempty"`
	URL     string `json:"url,omitempty"`
	// RevisedPrompt is set when the service rewrote the prompt.
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// Format reports which payload the image carries.
func (g GeneratedImage) Format() ImageResponseFormat {
	if g.B64JSON != "" {
		return ImageResponseFormatB64JSON
	}
	return ImageResponseFormatURL
}

func (g *GeneratedImage) UnmarshalJSON(data []byte) error {
	type wire GeneratedImage
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if (w.B64JSON == "") == (w.URL == "") {
		return ErrImagePayload
	}
	*g = GeneratedImage(w)
	return nil
}
