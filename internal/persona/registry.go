// Package persona holds the static chatbot identities and their lookup
// registry. Descriptors are immutable after process start.
package persona

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"persona-chat/internal/domain"
)

var ErrUnknown = errors.New("unknown persona")

const defaultModel = "gpt-4o-mini"

// Defaults returns the two built-in personas. The first one is the default
// selection for a new session. Model is left empty so the registry fills it
// from the configured default; a YAML override may still pin one per persona.
func Defaults() []domain.Persona {
	return []domain.Persona{
		{
			ID:          "hitesh",
			DisplayName: "Hitesh Choudhary",
			Greeting:    "Haan Ji!, Kaise hai aap sabhi, umeed hai chai ka maza to le hi rahe honge, code ki tention mat lena wo hum karwa denge, kaise help kar sakte hai appki aaj?",
			Endpoint:    "/api/chat/hitesh",
			Prompt:      hiteshPrompt,
			Temperature: 0.85,
			MaxTokens:   1200,
			// small penalties to reduce repetition across long mentoring replies
			PresencePenalty:  0.1,
			FrequencyPenalty: 0.1,
			QuickReplies: []string{
				"Haan ji, bilkul!",
				"Dekho yaar...",
				"Main batata hun...",
				"Bohot easy hai",
				"Samjhe na?",
				"Chalo, main help karta hun",
			},
			FailureMessage: "Arre yaar, kuch technical issue aa gaya hai. Thoda wait karo!",
		},
		{
			ID:          "piyush",
			DisplayName: "Piyush Garg",
			Greeting:    "Hey there! 👋 I'm Piyush Garg, your full-stack mentor and fellow developer. What would you like to work on today?",
			Endpoint:    "/api/chat/piyush",
			Prompt:      piyushPrompt,
			Temperature: 0.8,
			MaxTokens:   1000,
			QuickReplies: []string{
				"Bhai, ye toh bilkul simple hai...",
				"Dekho, main aapko explain karta hun...",
				"Ye concept samajhne ke liye...",
				"Aap ye try karo!",
				"Ye toh basic hai yaar...",
				"Let me break this down for you...",
			},
			FailureMessage: "Hey, there seems to be a technical issue. Let me check what's going on!",
		},
	}
}

// Registry is a read-only lookup over the configured personas.
type Registry struct {
	byID  map[string]domain.Persona
	order []string
}

// NewRegistry builds the lookup. model is the deployment-wide default
// (OPENAI_MODEL) applied to every persona that does not pin its own; empty
// means the built-in default.
func NewRegistry(personas []domain.Persona, model string) (*Registry, error) {
	if len(personas) == 0 {
		return nil, errors.New("at least one persona is required")
	}
	if model == "" {
		model = defaultModel
	}

	r := &Registry{byID: make(map[string]domain.Persona, len(personas))}
	for _, p := range personas {
		if p.ID == "" {
			return nil, errors.New("persona id is required")
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate persona id %q", p.ID)
		}
		if p.Model == "" {
			p.Model = model
		}
		if p.Endpoint == "" {
			p.Endpoint = "/api/chat/" + p.ID
		}
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r, nil
}

func (r *Registry) Get(id string) (domain.Persona, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Default returns the first configured persona.
func (r *Registry) Default() domain.Persona {
	return r.byID[r.order[0]]
}

// List returns personas in configuration order.
func (r *Registry) List() []domain.Persona {
	out := make([]domain.Persona, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

type personaFile struct {
	Personas []domain.Persona `yaml:"personas"`
}

// LoadFile reads persona descriptors from a YAML file. The file replaces the
// built-in set wholesale; missing prompt or greeting fields fall back to the
// built-in persona with the same id, so a deployment can override just the
// sampling parameters.
func LoadFile(path string) ([]domain.Persona, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f personaFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Personas) == 0 {
		return nil, fmt.Errorf("%s defines no personas", path)
	}

	builtins := make(map[string]domain.Persona)
	for _, p := range Defaults() {
		builtins[p.ID] = p
	}
	for i, p := range f.Personas {
		base, ok := builtins[p.ID]
		if !ok {
			continue
		}
		if p.Prompt == "" {
			f.Personas[i].Prompt = base.Prompt
		}
		if p.Greeting == "" {
			f.Personas[i].Greeting = base.Greeting
		}
		if p.FailureMessage == "" {
			f.Personas[i].FailureMessage = base.FailureMessage
		}
		if len(p.QuickReplies) == 0 {
			f.Personas[i].QuickReplies = base.QuickReplies
		}
	}
	return f.Personas, nil
}
