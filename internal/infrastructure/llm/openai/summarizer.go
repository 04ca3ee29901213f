// Package openai wraps the external text-generation capability behind the
// OnlineSummarizer port.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
	"github.com/kirillkom/resource-assistant/internal/infrastructure/resilience"
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// Summarizer makes at most one chat-completion call per Summarize invocation.
// Without an API key it reports unavailable and never touches the network.
type Summarizer struct {
	client      *goopenai.Client
	model       string
	temperature float32
	executor    *resilience.Executor
}

func NewSummarizer(cfg Config, executor *resilience.Executor) *Summarizer {
	s := &Summarizer{
		model:       cfg.Model,
		temperature: cfg.Temperature,
		executor:    executor,
	}
	if cfg.APIKey == "" {
		return s
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}
	s.client = goopenai.NewClientWithConfig(clientCfg)
	return s
}

func (s *Summarizer) Available() bool {
	return s.client != nil
}

func (s *Summarizer) Summarize(ctx context.Context, text, instruction string, maxTokens int) (string, error) {
	if s.client == nil {
		return "", domain.WrapError(domain.ErrUnavailable, "openai summarize", errors.New("no api key configured"))
	}

	var result string
	call := func(ctx context.Context) error {
		resp, err := s.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
			Model:       s.model,
			MaxTokens:   maxTokens,
			Temperature: s.temperature,
			Messages: []goopenai.ChatCompletionMessage{
				{
					Role:    goopenai.ChatMessageRoleUser,
					Content: instruction + "\n\n" + text,
				},
			},
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return errors.New("empty completion response")
		}
		result = strings.TrimSpace(resp.Choices[0].Message.Content)
		return nil
	}

	var err error
	if s.executor != nil {
		err = s.executor.Execute(ctx, "openai.summarize", call, classifyOpenAIError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return "", domain.WrapError(domain.ErrSummarizationFailed, "openai summarize", err)
	}
	return result, nil
}
