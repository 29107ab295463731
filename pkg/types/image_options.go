package types

import "fmt"

// ImageModel selects the image generation model.
type ImageModel int

const (
	ImageModelDallE3 ImageModel = iota
)

// ImageQuality controls the level of detail of generated images.
type ImageQuality int

const (
	ImageQualityStandard ImageQuality = iota
	ImageQualityHD
)

// ImageResponseFormat selects how generated images are returned.
type ImageResponseFormat int

const (
	ImageResponseFormatURL ImageResponseFormat = iota
	ImageResponseFormatB64JSON
)

// ImageSize is the pixel size of generated images.
type ImageSize int

const (
	ImageSizeLarge     ImageSize = iota // 1024x1024
	ImageSizeLargeWide                  // 1792x1024
	ImageSizeLargeTall                  // 1024x1792
)

// ImageStyle biases generation towards dramatic or natural looking images.
type ImageStyle int

const (
	ImageStyleVivid ImageStyle = iota
	ImageStyleNatural
)

// Defaults applied by the API when a field is left out of the request.
const (
	DefaultImageModel          = ImageModelDallE3
	DefaultImageQuality        = ImageQualityStandard
	DefaultImageResponseFormat = ImageResponseFormatURL
	DefaultImageSize           = ImageSizeLarge
	DefaultImageStyle          = ImageStyleVivid
	DefaultImageCount          = 1
)

// Wire tokens, indexed by variant.
var (
	imageModelTokens          = []string{"dall-e-3"}
	imageQualityTokens        = []string{"standard", "hd"}
	imageResponseFormatTokens = []string{"url", "b64_json"}
	imageSizeTokens           = []string{"1024x1024", "1792x1024", "1024x1792"}
	imageStyleTokens          = []string{"vivid", "natural"}
)

// UnknownTokenError reports a wire token that does not map to any variant.
type UnknownTokenError struct {
	Type  string
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("%s: unknown token %q", e.Type, e.Token)
}

func tokenOf[E ~int](kind string, v E, tokens []string) (string, error) {
	if int(v) < 0 || int(v) >= len(tokens) {
		return "", fmt.Errorf("%s: unknown variant %d", kind, int(v))
	}
	return tokens[int(v)], nil
}

func variantOf[E ~int](kind, token string, tokens []string) (E, error) {
	for i, t := range tokens {
		if t == token {
			return E(i), nil
		}
	}
	return 0, &UnknownTokenError{Type: kind, Token: token}
}

func stringOf[E ~int](kind string, v E, tokens []string) string {
	token, err := tokenOf(kind, v, tokens)
	if err != nil {
		return fmt.Sprintf("%s(%d)", kind, int(v))
	}
	return token
}

func (m ImageModel) String() string { return stringOf("ImageModel", m, imageModelTokens) }

func (m ImageModel) MarshalText() ([]byte, error) {
	token, err := tokenOf("ImageModel", m, imageModelTokens)
	return []byte(token), err
}

func (m *ImageModel) UnmarshalText(text []byte) error {
	v, err := variantOf[ImageModel]("ImageModel", string(text), imageModelTokens)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (q ImageQuality) String() string { return stringOf("ImageQuality", q, imageQualityTokens) }

func (q ImageQuality) MarshalText() ([]byte, error) {
	token, err := tokenOf("ImageQuality", q, imageQualityTokens)
	return []byte(token), err
}

func (q *ImageQuality) UnmarshalText(text []byte) error {
	v, err := variantOf[ImageQuality]("ImageQuality", string(text), imageQualityTokens)
	if err != nil {
		return err
	}
	*q = v
	return nil
}

func (f ImageResponseFormat) String() string {
	return stringOf("ImageResponseFormat", f, imageResponseFormatTokens)
}

func (f ImageResponseFormat) MarshalText() ([]byte, error) {
	token, err := tokenOf("ImageResponseFormat", f, imageResponseFormatTokens)
	return []byte(token), err
}

func (f *ImageResponseFormat) UnmarshalText(text []byte) error {
	v, err := variantOf[ImageResponseFormat]("ImageResponseFormat", string(text), imageResponseFormatTokens)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (s ImageSize) String() string { return stringOf("ImageSize", s, imageSizeTokens) }

func (s ImageSize) MarshalText() ([]byte, error) {
	token, err := tokenOf("ImageSize", s, imageSizeTokens)
	return []byte(token), err
}

func (s *ImageSize) UnmarshalText(text []byte) error {
	v, err := variantOf[ImageSize]("ImageSize", string(text), imageSizeTokens)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s ImageStyle) String() string { return stringOf("ImageStyle", s, imageStyleTokens) }

func (s ImageStyle) MarshalText() ([]byte, error) {
	token, err := tokenOf("ImageStyle", s, imageStyleTokens)
	return []byte(token), err
}

func (s *ImageStyle) UnmarshalText(text []byte) error {
	v, err := variantOf[ImageStyle]("ImageStyle", string(text), imageStyleTokens)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
