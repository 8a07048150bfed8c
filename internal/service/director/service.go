package director

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/kitround/director/internal/config"
	"github.com/kitround/director/internal/model/persona"
)

// Runner is the orchestration seam handlers depend on. The runtime behind it
// owns routing, tool use and any timeout or retry policy; this code imposes
// none of its own.
type Runner interface {
	Run(ctx context.Context, input string) (Result, error)
}

// Service drives the Director through an eino prompt+model chain.
type Service struct {
	personas persona.Store
	cfg      config.AIConfig
	chain    compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the Director chain against the configured chat model.
func NewService(ctx context.Context, personas persona.Store, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile director chain: %w", err)
	}

	return &Service{
		personas: personas,
		cfg:      cfg,
		chain:    runnable,
	}, nil
}

// Run submits the (possibly mode-tagged) input to the Director and wraps the
// model's reply in a Result.
func (s *Service) Run(ctx context.Context, input string) (Result, error) {
	response, err := s.chain.Invoke(ctx, map[string]any{
		"system": BuildSystemPrompt(s.personas),
		"query":  input,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to run director chain: %w", err)
	}

	result := normalize(response)
	log.Printf("[director] generated response, length=%d", len(result.Text()))
	return result, nil
}

// normalize folds the model message into one of the two known output shapes.
func normalize(msg *schema.Message) Result {
	if msg == nil {
		return Result{}
	}
	if msg.Content != "" {
		return Result{FinalOutput: msg.Content}
	}
	for _, part := range msg.MultiContent {
		if part.Type == schema.ChatMessagePartTypeText && part.Text != "" {
			return Result{FinalOutput: TextOutput{Text: part.Text}}
		}
	}
	return Result{}
}
