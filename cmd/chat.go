package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rogeecn/llm-sdk-go/internal/convo"
	"github.com/rogeecn/llm-sdk-go/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	chatModel   string
	chatSystem  string
	chatName    string
	chatFile    string
	chatProfile string
	chatJSON    bool
	chatDryRun  bool
)

var chatCmd = &cobra.Command{
	Use:   "chat [prompt]",
	Short: "发送对话补全请求",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVar(&chatModel, "model", "", "模型 ID (默认: 对话文件或 LLMSDK_CHAT_MODEL)")
	chatCmd.Flags().StringVar(&chatSystem, "system", "", "系统提示词")
	chatCmd.Flags().StringVar(&chatName, "name", "", "用户消息的参与者名称")
	chatCmd.Flags().StringVar(&chatFile, "file", "", "YAML 对话文件")
	chatCmd.Flags().StringVar(&chatProfile, "profile", "", "使用已保存的凭据 (UUID)")
	chatCmd.Flags().BoolVar(&chatJSON, "json", false, "输出完整 JSON 响应")
	chatCmd.Flags().BoolVar(&chatDryRun, "dry-run", false, "仅打印请求, 不发送")
}

func runChat(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd, chatProfile)
	if err != nil {
		return err
	}

	req, err := buildChatRequest(rt.cfg.ChatModel, args)
	if err != nil {
		return err
	}

	if chatDryRun {
		return printDryRun(cmd, req, rt.baseURL)
	}

	log.Info().
		Str("model", req.Model).
		Int("messages", len(req.Messages)).
		Msg("chat completion requested")

	resp, err := rt.client().ChatCompletion(context.Background(), req)
	if err != nil {
		log.Error().Err(err).Str("model", req.Model).Msg("chat completion failed")
		return fmt.Errorf("chat completion: %w", err)
	}
	rt.recordUsage()

	log.Info().
		Str("id", resp.ID).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("chat completion finished")

	if chatJSON {
		encoded, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.FirstContent())
	return nil
}

// buildChatRequest assembles the conversation in order: system prompt, file
// messages, positional prompt.
func buildChatRequest(defaultModel string, args []string) (types.ChatCompletionRequest, error) {
	builder := types.NewChatCompletionRequestBuilder()
	var messages []types.Message
	model := defaultModel

	if chatSystem != "" {
		messages = append(messages, types.SystemMessage{Content: chatSystem})
	}
	if strings.TrimSpace(chatFile) != "" {
		f, err := convo.Load(chatFile)
		if err != nil {
			return types.ChatCompletionRequest{}, err
		}
		fileMessages, err := f.ChatMessages()
		if err != nil {
			return types.ChatCompletionRequest{}, fmt.Errorf("conversation %q: %w", chatFile, err)
		}
		messages = append(messages, fileMessages...)
		if f.Model != "" {
			model = f.Model
		}
	}

	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		messages = append(messages, types.UserMessage{Content: args[0], Name: chatName})
	}
	if chatModel != "" {
		model = chatModel
	}

	return builder.Model(model).Messages(messages...).Build()
}
