package types

import "fmt"

const imageRequestName = "image generation request"

// ImageGenerationRequestBuilder accumulates the fields of an image request.
// Setters may be called in any order; the last call for a field wins.
type ImageGenerationRequestBuilder struct {
	prompt         string
	model          *ImageModel
	n              *int
	quality        *ImageQuality
	responseFormat *ImageResponseFormat
	size           *ImageSize
	style          *ImageStyle
	user           *string
}

func NewImageGenerationRequestBuilder() *ImageGenerationRequestBuilder {
	return &ImageGenerationRequestBuilder{}
}

// NewImageGenerationRequest builds a request with every optional field left at
// its default.
func NewImageGenerationRequest(prompt string) (ImageGenerationRequest, error) {
	return NewImageGenerationRequestBuilder().Prompt(prompt).Build()
}

func (b *ImageGenerationRequestBuilder) Prompt(prompt string) *ImageGenerationRequestBuilder {
	b.prompt = prompt
	return b
}

func (b *ImageGenerationRequestBuilder) Model(model ImageModel) *ImageGenerationRequestBuilder {
	b.model = &model
	return b
}

func (b *ImageGenerationRequestBuilder) N(n int) *ImageGenerationRequestBuilder {
	b.n = &n
	return b
}

func (b *ImageGenerationRequestBuilder) Quality(quality ImageQuality) *ImageGenerationRequestBuilder {
	b.quality = &quality
	return b
}

func (b *ImageGenerationRequestBuilder) ResponseFormat(format ImageResponseFormat) *ImageGenerationRequestBuilder {
	b.responseFormat = &format
	return b
}

func (b *ImageGenerationRequestBuilder) Size(size ImageSize) *ImageGenerationRequestBuilder {
	b.size = &size
	return b
}

func (b *ImageGenerationRequestBuilder) Style(style ImageStyle) *ImageGenerationRequestBuilder {
	b.style = &style
	return b
}

func (b *ImageGenerationRequestBuilder) User(user string) *ImageGenerationRequestBuilder {
	b.user = &user
	return b
}

// Build validates the accumulated fields and resolves defaults for every
// optional field that was not set.
func (b *ImageGenerationRequestBuilder) Build() (ImageGenerationRequest, error) {
	if b.prompt == "" {
		return ImageGenerationRequest{}, &MissingFieldError{Request: imageRequestName, Field: "prompt"}
	}
	if b.n != nil && *b.n < 1 {
		return ImageGenerationRequest{}, fmt.Errorf("build %s: n must be at least 1, got %d", imageRequestName, *b.n)
	}

	req := ImageGenerationRequest{
		Prompt:         b.prompt,
		Model:          DefaultImageModel,
		N:              resolve(b.n, DefaultImageCount),
		Quality:        resolve(b.quality, DefaultImageQuality),
		ResponseFormat: resolve(b.responseFormat, DefaultImageResponseFormat),
		Size:           resolve(b.size, DefaultImageSize),
		Style:          resolve(b.style, DefaultImageStyle),
	}
	if b.model != nil {
		req.Model = *b.model
	}
	if b.user != nil {
		req.User = Some(*b.user)
	}

	return req, nil
}

func resolve[T comparable](set *T, def T) Optional[T] {
	if set == nil {
		return Defaulted(def)
	}
	return Some(*set)
}
