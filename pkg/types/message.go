package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Role is the wire tag of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ErrUnknownRole is returned when a decoded message carries a role with no
// matching variant.
var ErrUnknownRole = errors.New("unknown message role")

// Message is one entry of a chat conversation. The set of implementations is
// closed: SystemMessage, UserMessage, AssistantMessage and ToolMessage. The
// role is derived from the concrete type when the message is encoded.
type Message interface {
	Role() Role
	isMessage()
}

// SystemMessage sets the behaviour of the assistant.
type SystemMessage struct {
	Content string `json:"content"`
	// Name differentiates participants that share a role.
	Name string `json:"name,omitempty"`
}

// UserMessage is a message written by the end user.
type UserMessage struct {
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// AssistantMessage is a message produced by the model.
type AssistantMessage struct {
	Content   string     `json:"content"`
	Name      string     `json:"name,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	// Function is the name of the function the model called.
	Function string `json:"function,omitempty"`
}

// ToolMessage carries the result of a tool call back to the model.
type ToolMessage struct {
	Content    string `json:"content"`
	Name       string `json:"name,omitempty"`
	ToolCallID string `json:"tool_call_id,omitempty"`
}

func (SystemMessage) Role() Role    { return RoleSystem }
func (UserMessage) Role() Role      { return RoleUser }
func (AssistantMessage) Role() Role { return RoleAssistant }
func (ToolMessage) Role() Role      { return RoleTool }

func (SystemMessage) isMessage()    {}
func (UserMessage) isMessage()      {}
func (AssistantMessage) isMessage() {}
func (ToolMessage) isMessage()      {}

func (m SystemMessage) MarshalJSON() ([]byte, error) {
	type wire SystemMessage
	return json.Marshal(struct {
		Role Role `json:"role"`
		wire
	}{RoleSystem, wire(m)})
}

func (m UserMessage) MarshalJSON() ([]byte, error) {
	type wire UserMessage
	return json.Marshal(struct {
		Role Role `json:"role"`
		wire
	}{RoleUser, wire(m)})
}

func (m AssistantMessage) MarshalJSON() ([]byte, error) {
	type wire AssistantMessage
	return json.Marshal(struct {
		Role Role `json:"role"`
		wire
	}{RoleAssistant, wire(m)})
}

func (m ToolMessage) MarshalJSON() ([]byte, error) {
	type wire ToolMessage
	return json.Marshal(struct {
		Role Role `json:"role"`
		wire
	}{RoleTool, wire(m)})
}

// ToolCallType is the kind of a tool call. Only function calls exist today;
// the zero value encodes as "function".
type ToolCallType string

const ToolCallTypeFunction ToolCallType = "function"

func (t ToolCallType) MarshalText() ([]byte, error) {
	if t == "" {
		return []byte(ToolCallTypeFunction), nil
	}
	return []byte(t), nil
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID       string        `json:"id"`
	Type     ToolCallType  `json:"type"`
	Function *FunctionCall `json:"function,omitempty"`
}

// FunctionCall names the function a tool call targets and its JSON encoded
// arguments.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// NewFunctionToolCall returns a function tool call.
func NewFunctionToolCall(id, name, arguments string) ToolCall {
	return ToolCall{
		ID:   id,
		Type: ToolCallTypeFunction,
		Function: &FunctionCall{
			Name:      name,
			Arguments: arguments,
		},
	}
}

// DecodeMessage decodes a single message, selecting the variant from its role.
func DecodeMessage(data []byte) (Message, error) {
	var head struct {
		Role Role `json:"role"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}

	switch head.Role {
	case RoleSystem:
		var m SystemMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode system message: %w", err)
		}
		return m, nil
	case RoleUser:
		var m UserMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode user message: %w", err)
		}
		return m, nil
	case RoleAssistant:
		var m AssistantMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode assistant message: %w", err)
		}
		return m, nil
	case RoleTool:
		var m ToolMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode tool message: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("decode message: %w %q", ErrUnknownRole, head.Role)
	}
}

// Messages is an ordered conversation. It decodes each entry into its variant.
type Messages []Message

func (ms *Messages) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode messages: %w", err)
	}

	decoded := make(Messages, 0, len(raw))
	for i, item := range raw {
		m, err := DecodeMessage(item)
		if err != nil {
			return fmt.Errorf("messages[%d]: %w", i, err)
		}
		decoded = append(decoded, m)
	}
	*ms = decoded
	return nil
}
