// Package completion is the server-side core of the proxy: it turns one
// persona plus a posted message history into one upstream chat-completion
// call and classifies whatever comes back.
package completion

import (
	"context"

	"persona-chat/internal/config"
	"persona-chat/internal/domain"
	"persona-chat/internal/persona"
)

type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

type Request struct {
	Model            string
	Messages         []domain.ChatMessage
	Temperature      float32
	MaxTokens        int
	PresencePenalty  float32
	FrequencyPenalty float32
}

type Service struct {
	client   Client
	registry *persona.Registry
	cfg      config.Config
}

func NewService(client Client, registry *persona.Registry, cfg config.Config) *Service {
	return &Service{
		client:   client,
		registry: registry,
		cfg:      cfg,
	}
}

// Configured reports whether the upstream credential is present. Transports
// check it before doing any other work on a request so an unconfigured
// deployment answers the same way no matter what was posted.
func (s *Service) Configured() bool {
	return s.cfg.OpenAIKey != ""
}

// Complete runs one upstream call for the given persona. The credential check
// is repeated here so no caller can reach the upstream without it. No retry:
// the upstream is called exactly once.
func (s *Service) Complete(ctx context.Context, personaID string, history []domain.ChatMessage) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}

	p, ok := s.registry.Get(personaID)
	if !ok {
		return "", persona.ErrUnknown
	}

	messages := make([]domain.ChatMessage, 0, len(history)+1)
	messages = append(messages, domain.ChatMessage{
		Role:    domain.RoleSystem,
		Content: p.Prompt,
	})
	messages = append(messages, history...)

	return s.client.Complete(ctx, Request{
		Model:            p.Model,
		Messages:         messages,
		Temperature:      p.Temperature,
		MaxTokens:        p.MaxTokens,
		PresencePenalty:  p.PresencePenalty,
		FrequencyPenalty: p.FrequencyPenalty,
	})
}

// Persona exposes descriptor lookup to transports that need greeting or
// failure strings without reaching into the registry themselves.
func (s *Service) Persona(id string) (domain.Persona, bool) {
	return s.registry.Get(id)
}

func (s *Service) DefaultPersona() domain.Persona {
	return s.registry.Default()
}

func (s *Service) ListPersonas() []domain.Persona {
	return s.registry.List()
}
