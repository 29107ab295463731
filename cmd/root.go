package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "llm-sdk",
	Short:         "OpenAI 对话与图像 API 命令行客户端",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}
