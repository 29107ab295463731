// Package convo loads chat conversations from YAML files.
//
//	model: gpt-4o-mini
//	messages:
//	  - role: system
//	    content: You are terse.
//	  - role: user
//	    content: Hello
package convo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rogeecn/llm-sdk-go/pkg/types"
	"gopkg.in/yaml.v3"
)

// File is a conversation as written on disk.
type File struct {
	Model    string        `yaml:"model"`
	Messages []MessageEntry `yaml:"messages"`
}

type MessageEntry struct {
	Role       string         `yaml:"role"`
	Content    string         `yaml:"content"`
	Name       string         `yaml:"name"`
	ToolCallID string         `yaml:"tool_call_id"`
	Function   string         `yaml:"function"`
	ToolCalls  []ToolCallEntry `yaml:"tool_calls"`
}

type ToolCallEntry struct {
	ID        string `yaml:"id"`
	Type      string `yaml:"type"`
	Name      string `yaml:"name"`
	Arguments string `yaml:"arguments"`
}

// Load reads and parses the conversation at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read conversation %q: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse conversation %q: %w", path, err)
	}
	return f, nil
}

// Parse decodes a conversation. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &f, nil
}

// ChatMessages converts every entry into its typed message variant.
func (f *File) ChatMessages() ([]types.Message, error) {
	messages := make([]types.Message, 0, len(f.Messages))
	for i, entry := range f.Messages {
		m, err := entry.Message()
		if err != nil {
			return nil, fmt.Errorf("messages[%d]: %w", i, err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// Builder returns a chat builder seeded with the file's model and messages.
// The caller may still override either before Build.
func (f *File) Builder() (*types.ChatCompletionRequestBuilder, error) {
	messages, err := f.ChatMessages()
	if err != nil {
		return nil, err
	}

	b := types.NewChatCompletionRequestBuilder().Messages(messages...)
	if f.Model != "" {
		b.Model(f.Model)
	}
	return b, nil
}

// Message converts the entry into a typed message. Fields that do not belong
// to the role are rejected.
func (s MessageEntry) Message() (types.Message, error) {
	role := types.Role(strings.ToLower(strings.TrimSpace(s.Role)))

	if role != types.RoleAssistant && (len(s.ToolCalls) > 0 || s.Function != "") {
		return nil, fmt.Errorf("role %q does not accept tool_calls or function", role)
	}
	if role != types.RoleTool && s.ToolCallID != "" {
		return nil, fmt.Errorf("role %q does not accept tool_call_id", role)
	}

	switch role {
	case types.RoleSystem:
		return types.SystemMessage{Content: s.Content, Name: s.Name}, nil
	case types.RoleUser:
		return types.UserMessage{Content: s.Content, Name: s.Name}, nil
	case types.RoleAssistant:
		m := types.AssistantMessage{Content: s.Content, Name: s.Name, Function: s.Function}
		for _, call := range s.ToolCalls {
			m.ToolCalls = append(m.ToolCalls, call.toolCall())
		}
		return m, nil
	case types.RoleTool:
		return types.ToolMessage{Content: s.Content, Name: s.Name, ToolCallID: s.ToolCallID}, nil
	default:
		return nil, fmt.Errorf("%w %q", types.ErrUnknownRole, s.Role)
	}
}

func (c ToolCallEntry) toolCall() types.ToolCall {
	call := types.ToolCall{
		ID:   c.ID,
		Type: types.ToolCallType(c.Type),
	}
	if call.Type == "" {
		call.Type = types.ToolCallTypeFunction
	}
	if c.Name != "" || c.Arguments != "" {
		call.Function = &types.FunctionCall{Name: c.Name, Arguments: c.Arguments}
	}
	return call
}
