package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogeecn/llm-sdk-go/internal/config"
	"github.com/rogeecn/llm-sdk-go/internal/profile"
	"github.com/rogeecn/llm-sdk-go/pkg/types"
)

type fakeSDKClient struct {
	apiKey  string
	baseURL string

	chatReq   *types.ChatCompletionRequest
	chatResp  *types.ChatCompletionResponse
	imageReq  *types.ImageGenerationRequest
	imageResp *types.ImageGenerationResponse
	err       error
}

func (f *fakeSDKClient) ChatCompletion(_ context.Context, req types.ChatCompletionRequest) (*types.ChatCompletionResponse, error) {
	f.chatReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.chatResp, nil
}

func (f *fakeSDKClient) CreateImage(_ context.Context, req types.ImageGenerationRequest) (*types.ImageGenerationResponse, error) {
	f.imageReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.imageResp, nil
}

func useFakeClient(t *testing.T, fake *fakeSDKClient) {
	t.Helper()

	orig := newSDKClient
	newSDKClient = func(_ *config.Config, apiKey, baseURL string) sdkClient {
		fake.apiKey = apiKey
		fake.baseURL = baseURL
		return fake
	}
	t.Cleanup(func() { newSDKClient = orig })
}

func setupEnv(t *testing.T) string {
	t.Helper()

	dataDir := t.TempDir()
	t.Setenv("LLMSDK_DATA_DIR", dataDir)
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("OPENAI_BASE_URL", "https://api.openai.com/v1")
	t.Setenv("LLMSDK_CHAT_MODEL", "gpt-4o-mini")
	return dataDir
}

func chatResponse(content string) *types.ChatCompletionResponse {
	return &types.ChatCompletionResponse{
		ID:      "chatcmpl-1",
		Choices: []types.ChatChoice{{Message: types.AssistantMessage{Content: content}, FinishReason: "stop"}},
	}
}

func TestChatCommand(t *testing.T) {
	setupEnv(t)
	fake := &fakeSDKClient{chatResp: chatResponse("Bonjour!")}
	useFakeClient(t, fake)

	out, err := executeForTest("chat", "--system", "Answer in French.", "Hello")
	if err != nil {
		t.Fatalf("chat command error: %v", err)
	}
	if strings.TrimSpace(out) != "Bonjour!" {
		t.Fatalf("output = %q, want Bonjour!", out)
	}

	if fake.apiKey != "sk-env" {
		t.Fatalf("apiKey = %q, want sk-env", fake.apiKey)
	}
	if fake.chatReq == nil || fake.chatReq.Model != "gpt-4o-mini" {
		t.Fatalf("request = %+v", fake.chatReq)
	}
	if len(fake.chatReq.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(fake.chatReq.Messages))
	}
	if _, ok := fake.chatReq.Messages[0].(types.SystemMessage); !ok {
		t.Fatalf("Messages[0] = %T, want SystemMessage", fake.chatReq.Messages[0])
	}
}

func TestChatCommandWithoutMessagesFails(t *testing.T) {
	setupEnv(t)
	fake := &fakeSDKClient{chatResp: chatResponse("unused")}
	useFakeClient(t, fake)

	_, err := executeForTest("chat")
	if !errors.Is(err, types.ErrMissingField) {
		t.Fatalf("chat command error = %v, want ErrMissingField", err)
	}
	if fake.chatReq != nil {
		t.Fatal("client should not be called without messages")
	}
}

func TestChatCommandDryRun(t *testing.T) {
	setupEnv(t)
	fake := &fakeSDKClient{}
	useFakeClient(t, fake)

	out, err := executeForTest("chat", "--dry-run", "--model", "gpt-4o", "hi")
	if err != nil {
		t.Fatalf("chat dry-run error: %v", err)
	}

	want := "POST https://api.openai.com/v1/chat/completions\n" +
		`{"messages":[{"role":"user","content":"hi"}],"model":"gpt-4o"}` + "\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
	if fake.chatReq != nil {
		t.Fatal("dry-run should not call the client")
	}
}

func TestChatCommandConversationFile(t *testing.T) {
	setupEnv(t)
	fake := &fakeSDKClient{chatResp: chatResponse("42")}
	useFakeClient(t, fake)

	path := filepath.Join(t.TempDir(), "convo.yaml")
	content := "model: gpt-4o\nmessages:\n  - role: user\n    content: What is six times seven?\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write conversation: %v", err)
	}

	out, err := executeForTest("chat", "--file", path, "--json")
	if err != nil {
		t.Fatalf("chat command error: %v", err)
	}
	if !strings.Contains(out, `"content": "42"`) {
		t.Fatalf("json output = %s", out)
	}
	if fake.chatReq.Model != "gpt-4o" {
		t.Fatalf("Model = %q, want gpt-4o from file", fake.chatReq.Model)
	}
}

func TestChatCommandUpstreamError(t *testing.T) {
	setupEnv(t)
	useFakeClient(t, &fakeSDKClient{err: errors.New("status=500")})

	_, err := executeForTest("chat", "hi")
	if err == nil || !strings.Contains(err.Error(), "chat completion: status=500") {
		t.Fatalf("chat command error = %v", err)
	}
}

func TestChatCommandProfile(t *testing.T) {
	dataDir := setupEnv(t)
	manager := profile.NewManager(dataDir)
	p, err := manager.Create("proxy", "sk-profile", "http://127.0.0.1:9000/v1")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	fake := &fakeSDKClient{chatResp: chatResponse("ok")}
	useFakeClient(t, fake)

	if _, err := executeForTest("chat", "--profile", p.UUID, "hi"); err != nil {
		t.Fatalf("chat command error: %v", err)
	}
	if fake.apiKey != "sk-profile" || fake.baseURL != "http://127.0.0.1:9000/v1" {
		t.Fatalf("client credentials = %q %q", fake.apiKey, fake.baseURL)
	}

	used, err := manager.Get(p.UUID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if used.RequestCount != 1 {
		t.Fatalf("RequestCount = %d, want 1", used.RequestCount)
	}
}

func TestChatCommandInvalidProfile(t *testing.T) {
	setupEnv(t)
	useFakeClient(t, &fakeSDKClient{})

	_, err := executeForTest("chat", "--profile", "not-a-uuid", "hi")
	if err == nil || !strings.Contains(err.Error(), "invalid uuid") {
		t.Fatalf("chat command error = %v, want invalid uuid", err)
	}
}
