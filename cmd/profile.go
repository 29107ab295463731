package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rogeecn/llm-sdk-go/internal/config"
	"github.com/rogeecn/llm-sdk-go/internal/profile"
	"github.com/spf13/cobra"
)

var (
	profileName    string
	profileAPIKey  string
	profileBaseURL string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "凭据管理",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有凭据",
	RunE:  runProfileList,
}

var profileAddCmd = &cobra.Command{
	Use:   "add",
	Short: "保存一组 API 凭据",
	RunE:  runProfileAdd,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <uuid>",
	Short: "删除凭据",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileDeleteCmd)

	profileAddCmd.Flags().StringVar(&profileName, "name", "", "凭据名称")
	profileAddCmd.Flags().StringVar(&profileAPIKey, "api-key", "", "API Key (必填)")
	profileAddCmd.Flags().StringVar(&profileBaseURL, "base-url", "", "API 地址 (默认: https://api.openai.com/v1)")
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	manager, err := newProfileManager()
	if err != nil {
		return err
	}

	profiles, err := manager.List()
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No profiles found.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "UUID\tNAME\tAPI_KEY\tBASE_URL\tREQUESTS\tUPDATED_AT")
	for _, p := range profiles {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\t%s\n",
			p.UUID,
			p.Name,
			p.MaskedAPIKey(),
			p.BaseURL,
			p.RequestCount,
			p.UpdatedAt.Format(time.RFC3339),
		)
	}
	return nil
}

func runProfileAdd(cmd *cobra.Command, _ []string) error {
	if strings.TrimSpace(profileAPIKey) == "" {
		return fmt.Errorf("--api-key is required")
	}

	manager, err := newProfileManager()
	if err != nil {
		return err
	}

	p, err := manager.Create(profileName, profileAPIKey, profileBaseURL)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profile saved successfully.\nUUID: %s\n", p.UUID)
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	id := strings.TrimSpace(args[0])
	if !profile.IsValidUUID(id) {
		return fmt.Errorf("invalid uuid: %s", id)
	}

	manager, err := newProfileManager()
	if err != nil {
		return err
	}

	if err := manager.Delete(id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profile deleted: %s\n", id)
	return nil
}

func newProfileManager() (*profile.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return profile.NewManager(cfg.DataDir), nil
}
