package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rogeecn/llm-sdk-go/internal/config"
	"github.com/rogeecn/llm-sdk-go/internal/profile"
	"github.com/rogeecn/llm-sdk-go/pkg/client"
	"github.com/rogeecn/llm-sdk-go/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type sdkClient interface {
	ChatCompletion(ctx context.Context, req types.ChatCompletionRequest) (*types.ChatCompletionResponse, error)
	CreateImage(ctx context.Context, req types.ImageGenerationRequest) (*types.ImageGenerationResponse, error)
}

var newSDKClient = func(cfg *config.Config, apiKey, baseURL string) sdkClient {
	return client.New(apiKey,
		client.WithBaseURL(baseURL),
		client.WithTimeout(cfg.Timeout),
		client.WithOrganization(cfg.Organization),
		client.WithProject(cfg.Project),
		client.WithUserAgent(userAgent()),
		client.WithLogger(log.Logger),
	)
}

// runtime is the state shared by commands that talk to the API.
type runtime struct {
	cfg       *config.Config
	profiles  *profile.Manager
	profileID string
	apiKey    string
	baseURL   string
}

func loadRuntime(cmd *cobra.Command, profileID string) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log.Logger = config.InitLogger(cfg.LogLevel, cmd.ErrOrStderr())

	rt := &runtime{
		cfg:      cfg,
		profiles: profile.NewManager(cfg.DataDir),
		apiKey:   cfg.APIKey,
		baseURL:  cfg.BaseURL,
	}

	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return rt, nil
	}
	if !profile.IsValidUUID(profileID) {
		return nil, fmt.Errorf("invalid uuid: %s", profileID)
	}

	p, err := rt.profiles.Get(profileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	rt.profileID = p.UUID
	rt.apiKey = p.APIKey
	rt.baseURL = p.BaseURL

	log.Debug().
		Str("profile_uuid", p.UUID).
		Str("base_url", p.BaseURL).
		Msg("profile selected")

	return rt, nil
}

func (rt *runtime) client() sdkClient {
	return newSDKClient(rt.cfg, rt.apiKey, rt.baseURL)
}

// recordUsage bumps the selected profile's counters. Failures are logged only.
func (rt *runtime) recordUsage() {
	if rt.profileID == "" {
		return
	}
	if err := rt.profiles.UpdateUsage(rt.profileID); err != nil {
		log.Warn().Err(err).Str("profile_uuid", rt.profileID).Msg("profile usage update failed")
	}
}

func printDryRun(cmd *cobra.Command, req types.IntoRequest, baseURL string) error {
	httpReq, err := req.IntoRequest(baseURL)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s\n", httpReq.Method, httpReq.URL, httpReq.Body)
	return nil
}
