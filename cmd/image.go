package cmd

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rogeecn/llm-sdk-go/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	imageQuality string
	imageStyle   string
	imageSize    string
	imageFormat  string
	imageCount   int
	imageUser    string
	imageOut     string
	imageProfile string
	imageDryRun  bool
)

var errBase64ToTerminal = errors.New("refusing to write base64 image data to a terminal; use --out")

// isTerminal is replaced in tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var imageCmd = &cobra.Command{
	Use:   "image <prompt>",
	Short: "生成图像",
	Args:  cobra.ExactArgs(1),
	RunE:  runImage,
}

func init() {
	rootCmd.AddCommand(imageCmd)
	imageCmd.Flags().StringVar(&imageQuality, "quality", "", "图像质量: standard | hd")
	imageCmd.Flags().StringVar(&imageStyle, "style", "", "图像风格: vivid | natural")
	imageCmd.Flags().StringVar(&imageSize, "size", "", "图像尺寸: 1024x1024 | 1792x1024 | 1024x1792")
	imageCmd.Flags().StringVar(&imageFormat, "format", "", "返回格式: url | b64_json")
	imageCmd.Flags().IntVar(&imageCount, "n", 0, "生成数量")
	imageCmd.Flags().StringVar(&imageUser, "user", "", "终端用户标识")
	imageCmd.Flags().StringVar(&imageOut, "out", "", "b64_json 图像的输出文件")
	imageCmd.Flags().StringVar(&imageProfile, "profile", "", "使用已保存的凭据 (UUID)")
	imageCmd.Flags().BoolVar(&imageDryRun, "dry-run", false, "仅打印请求, 不发送")
}

func runImage(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd, imageProfile)
	if err != nil {
		return err
	}

	req, err := buildImageRequest(cmd, args[0])
	if err != nil {
		return err
	}

	if imageDryRun {
		return printDryRun(cmd, req, rt.baseURL)
	}

	format := req.ResponseFormat.Value()
	if format == types.ImageResponseFormatB64JSON && imageOut == "" && isTerminal(cmd.OutOrStdout()) {
		return errBase64ToTerminal
	}

	log.Info().
		Str("model", req.Model.String()).
		Str("size", req.Size.Value().String()).
		Str("quality", req.Quality.Value().String()).
		Msg("image generation requested")

	resp, err := rt.client().CreateImage(context.Background(), req)
	if err != nil {
		log.Error().Err(err).Msg("image generation failed")
		return fmt.Errorf("create image: %w", err)
	}
	rt.recordUsage()

	for i, img := range resp.Data {
		if img.RevisedPrompt != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "revised prompt: %s\n", img.RevisedPrompt)
		}
		if err := writeImage(cmd.OutOrStdout(), img, i, len(resp.Data)); err != nil {
			return err
		}
	}
	return nil
}

func buildImageRequest(cmd *cobra.Command, prompt string) (types.ImageGenerationRequest, error) {
	builder := types.NewImageGenerationRequestBuilder().Prompt(prompt)
	flags := cmd.Flags()

	if flags.Changed("quality") {
		var v types.ImageQuality
		if err := v.UnmarshalText([]byte(imageQuality)); err != nil {
			return types.ImageGenerationRequest{}, fmt.Errorf("--quality: %w", err)
		}
		builder.Quality(v)
	}
	if flags.Changed("style") {
		var v types.ImageStyle
		if err := v.UnmarshalText([]byte(imageStyle)); err != nil {
			return types.ImageGenerationRequest{}, fmt.Errorf("--style: %w", err)
		}
		builder.Style(v)
	}
	if flags.Changed("size") {
		var v types.ImageSize
		if err := v.UnmarshalText([]byte(imageSize)); err != nil {
			return types.ImageGenerationRequest{}, fmt.Errorf("--size: %w", err)
		}
		builder.Size(v)
	}
	if flags.Changed("format") {
		var v types.ImageResponseFormat
		if err := v.UnmarshalText([]byte(imageFormat)); err != nil {
			return types.ImageGenerationRequest{}, fmt.Errorf("--format: %w", err)
		}
		builder.ResponseFormat(v)
	}
	if flags.Changed("n") {
		builder.N(imageCount)
	}
	if flags.Changed("user") {
		builder.User(imageUser)
	}

	return builder.Build()
}

func writeImage(w io.Writer, img types.GeneratedImage, index, total int) error {
	if img.Format() == types.ImageResponseFormatURL {
		fmt.Fprintln(w, img.URL)
		return nil
	}

	if imageOut == "" {
		fmt.Fprintln(w, img.B64JSON)
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(img.B64JSON)
	if err != nil {
		return fmt.Errorf("decode image %d: %w", index, err)
	}

	path := outputPath(imageOut, index, total)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write image %d: %w", index, err)
	}
	fmt.Fprintln(w, path)
	return nil
}

// outputPath numbers files when more than one image is written.
func outputPath(out string, index, total int) string {
	if total <= 1 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(out, ext), index+1, ext)
}
