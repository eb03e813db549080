package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/CatholicOS/caritas-ai/config"
)

const fallbackReply = "I apologize, but I encountered an issue processing your request. Please try again."

// Service runs the conversational agent. Conversation memory is keyed
// by session ID, so concurrent users never share a transcript.
type Service struct {
	agent *react.Agent
	store ConversationStore
	model string
}

// NewService builds the Gemini-backed agent. Returns an error when the
// API key is missing or the model cannot be created; callers may run
// without an agent and serve 503 on chat routes.
func NewService(ctx context.Context, cfg *config.Config, toolbox *Toolbox, store ConversationStore) (*Service, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	maxTokens := 2048
	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.CaritasModel,
		Temperature: &cfg.CaritasTemp,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating chat model: %w", err)
	}

	ra, err := react.NewAgent(ctx, &react.AgentConfig{
		ToolCallingModel: chatModel,
		ToolsConfig: compose.ToolsNodeConfig{
			Tools: toolbox.BuildTools(),
		},
		MaxStep: cfg.MaxToolCalls * 2,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating agent: %w", err)
	}

	log.Printf("✅ CaritasAI agent ready (model: %s)", cfg.CaritasModel)
	return &Service{agent: ra, store: store, model: cfg.CaritasModel}, nil
}

// Chat runs one conversational turn for a session. History is loaded,
// the new user message appended, and both the user message and the
// reply are persisted after the model answers. A model failure yields
// an apology rather than an error so the endpoint stays conversational.
func (s *Service) Chat(ctx context.Context, sessionID, message string) string {
	history, err := s.store.LoadHistory(ctx, sessionID)
	if err != nil {
		log.Printf("⚠️ Failed to load conversation %s: %v", sessionID, err)
		history = []*schema.Message{}
	}

	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(systemPrompt))
	messages = append(messages, history...)

	userMsg := schema.UserMessage(message)
	messages = append(messages, userMsg)

	reply, err := s.agent.Generate(ctx, messages)
	if err != nil {
		log.Printf("❌ Agent error for session %s: %v", sessionID, err)
		return fallbackReply
	}

	if err := s.store.AddMessage(ctx, sessionID, userMsg); err != nil {
		log.Printf("⚠️ Failed to persist user message: %v", err)
	}
	if err := s.store.AddMessage(ctx, sessionID, reply); err != nil {
		log.Printf("⚠️ Failed to persist reply: %v", err)
	}

	return reply.Content
}

// Reset clears a session's transcript.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	return s.store.ClearHistory(ctx, sessionID)
}

// History returns a session's transcript.
func (s *Service) History(ctx context.Context, sessionID string) ([]*schema.Message, error) {
	return s.store.LoadHistory(ctx, sessionID)
}

func (s *Service) Model() string {
	return s.model
}
