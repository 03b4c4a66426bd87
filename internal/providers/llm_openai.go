package providers

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"tripgenie/pkg/utils"
)

// OpenAIProvider implements LLMProvider using the OpenAI chat API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4oMini
	}
	p := &OpenAIProvider{model: model}
	if apiKey != "" {
		p.client = openai.NewClient(apiKey)
	}
	return p
}

func (o *OpenAIProvider) Configured() bool { return o.client != nil }

func (o *OpenAIProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if o.client == nil {
		return "", fmt.Errorf("%w: openai API key not configured", utils.ErrProviderUnavailable)
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	})

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", utils.ErrProviderUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai returned no choices", utils.ErrProviderUnavailable)
	}

	return resp.Choices[0].Message.Content, nil
}

// NewLLMProvider selects a provider implementation by name.
func NewLLMProvider(provider, apiKey, model string) (LLMProvider, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIProvider(apiKey, model), nil
	case "gemini", "":
		return NewGeminiProvider(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}
