// Package pipeline owns the client-side conversation state: the ordered
// message list for the active persona, optimistic sends with timed delivery
// status, persona switching, and reactions. A rendering layer drives it
// through Send, SwitchPersona, and React and reads back Messages and
// IsTyping; nothing here persists across sessions.
package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"persona-chat/internal/domain"
	"persona-chat/internal/persona"
	"persona-chat/internal/usecase/memory"
)

// Completer is the transport to the completion proxy.
type Completer interface {
	Complete(ctx context.Context, endpoint string, history []domain.ChatMessage) (string, error)
}

const (
	// FallbackReply substitutes a success response whose message field is
	// absent or empty.
	FallbackReply = "Sorry, I couldn't process that. Please try again!"

	configErrorReply  = "Arre yaar, OpenAI API key configure nahi hai. Environment variables check karo!"
	genericErrorReply = "Arre yaar, kuch technical issue aa gaya hai. Thoda wait karo aur phir try karo!"
)

const (
	defaultDeliveredAfter = 1000 * time.Millisecond
	defaultReadAfter      = 2000 * time.Millisecond
)

type Service struct {
	client   Completer
	registry *persona.Registry
	session  *memory.Session

	mu       sync.Mutex
	active   domain.Persona
	messages []domain.Message
	typing   bool
	// epoch distinguishes conversations across persona switches; replies and
	// status timers from an older epoch are dropped.
	epoch int

	now            func() time.Time
	deliveredAfter time.Duration
	readAfter      time.Duration
}

// NewService builds a pipeline talking to the proxy through client, starting
// on the registry's default persona. session is optional: pass nil when the
// embedding UI does not surface conversation-memory counters; the pipeline
// only ever ticks it, never reads it.
func NewService(client Completer, registry *persona.Registry, session *memory.Session) *Service {
	s := &Service{
		client:         client,
		registry:       registry,
		session:        session,
		now:            time.Now,
		deliveredAfter: defaultDeliveredAfter,
		readAfter:      defaultReadAfter,
	}
	s.reset(registry.Default())
	return s
}

// Send runs one full send-and-receive cycle: append the optimistic user
// message, post the pre-append history plus the literal input to the active
// persona's endpoint, and reconcile the reply or failure into the list. A
// whitespace-only text is a no-op. Every failure still produces a visible
// assistant message; the typing flag is cleared in all outcomes.
//
// Send blocks until the cycle completes. Callers wanting the UI pattern of
// overlapping sends run it on their own goroutines; the list mutations are
// mutex-guarded and replies land in arrival order.
func (s *Service) Send(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	s.mu.Lock()
	// The payload is built from the snapshot before the optimistic append,
	// plus the literal input, so the request never depends on the mutated
	// list.
	history := make([]domain.ChatMessage, 0, len(s.messages)+1)
	for _, m := range s.messages {
		history = append(history, domain.ChatMessage{Role: m.Author, Content: m.Content})
	}
	history = append(history, domain.ChatMessage{Role: domain.RoleUser, Content: text})

	userMsg := domain.Message{
		ID:        domain.NewMessageID("user", s.now()),
		Content:   text,
		Author:    domain.RoleUser,
		CreatedAt: s.now(),
		Status:    domain.StatusSending,
	}
	s.messages = append(s.messages, userMsg)
	s.typing = true
	epoch := s.epoch
	endpoint := s.active.Endpoint
	s.mu.Unlock()

	if s.session != nil {
		s.session.AddMessage()
	}

	// Fixed-schedule status progression, independent of the network call.
	time.AfterFunc(s.deliveredAfter, func() {
		s.advanceStatus(userMsg.ID, epoch, domain.StatusDelivered)
	})
	time.AfterFunc(s.readAfter, func() {
		s.advanceStatus(userMsg.ID, epoch, domain.StatusRead)
	})

	reply, err := s.client.Complete(ctx, endpoint, history)

	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		// The persona changed while the call was in flight; the reply belongs
		// to a conversation that no longer exists.
		return
	}
	s.typing = false

	if err != nil {
		content := genericErrorReply
		if strings.Contains(err.Error(), "API key") {
			content = configErrorReply
		}
		s.messages = append(s.messages, domain.Message{
			ID:        domain.NewMessageID("error", s.now()),
			Content:   content,
			Author:    domain.RoleAssistant,
			CreatedAt: s.now(),
			Status:    domain.StatusError,
		})
		return
	}

	content := reply
	if strings.TrimSpace(content) == "" {
		content = FallbackReply
	}
	s.messages = append(s.messages, domain.Message{
		ID:        domain.NewMessageID("bot", s.now()),
		Content:   content,
		Author:    domain.RoleAssistant,
		CreatedAt: s.now(),
		Status:    domain.StatusSent,
	})
}

// SwitchPersona replaces the active persona and resets the conversation to a
// single seeded greeting. In-flight replies and pending status timers for the
// previous persona become no-ops.
func (s *Service) SwitchPersona(id string) error {
	p, ok := s.registry.Get(id)
	if !ok {
		return persona.ErrUnknown
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.reset(p)
	return nil
}

// caller must hold s.mu (or be the constructor).
func (s *Service) reset(p domain.Persona) {
	s.active = p
	s.typing = false
	s.messages = []domain.Message{{
		ID:        domain.NewMessageID("greet", s.now()),
		Content:   p.Greeting,
		Author:    domain.RoleAssistant,
		CreatedAt: s.now(),
		Status:    domain.StatusRead,
	}}
}

// React records one reaction on a message. Repeat reactions with the same
// symbol increment its count; an unknown id is a no-op.
func (s *Service) React(messageID, symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID != messageID {
			continue
		}
		for j := range s.messages[i].Reactions {
			if s.messages[i].Reactions[j].Symbol == symbol {
				s.messages[i].Reactions[j].Count++
				return
			}
		}
		s.messages[i].Reactions = append(s.messages[i].Reactions, domain.Reaction{Symbol: symbol, Count: 1})
		return
	}
}

func (s *Service) advanceStatus(id string, epoch int, next domain.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return
	}
	for i := range s.messages {
		if s.messages[i].ID != id {
			continue
		}
		// An error outcome is terminal and is never overwritten.
		if s.messages[i].Status == domain.StatusError {
			return
		}
		// The first hop only fires while the message is still in flight.
		if next == domain.StatusDelivered && s.messages[i].Status != domain.StatusSending {
			return
		}
		s.messages[i].Status = next
		return
	}
}

// Messages returns a copy of the current conversation in order.
func (s *Service) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// IsTyping reports whether a send is treated as in flight. Last write wins
// across overlapping sends.
func (s *Service) IsTyping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

// Active returns the current persona descriptor.
func (s *Service) Active() domain.Persona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// QuickReplies exposes the active persona's canned openers.
func (s *Service) QuickReplies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.active.QuickReplies...)
}
