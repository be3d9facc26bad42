package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"persona-chat/internal/config"
	"persona-chat/internal/domain"
	"persona-chat/internal/usecase/completion"
)

// Bot is an alternate chat surface over the same completion core. Each
// Telegram chat talks to one persona at a time; /persona switches it and
// starts the conversation over with that persona's greeting.
type Bot struct {
	api   *tgbotapi.BotAPI
	cfg   config.Config
	svc   *completion.Service
	store domain.HistoryStore

	mu       sync.Mutex
	personas map[int64]string
}

func NewBot(cfg config.Config, svc *completion.Service, store domain.HistoryStore) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:      api,
		cfg:      cfg,
		svc:      svc,
		store:    store,
		personas: make(map[int64]string),
	}, nil
}

func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			msg := update.Message
			if msg.From == nil {
				continue
			}
			go b.handleMessage(ctx, msg)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !isAllowedUser(msg.From.ID, b.cfg) {
		b.sendText(msg.Chat.ID, msg.MessageID, "access denied")
		return
	}

	text := strings.TrimSpace(msg.Text)
	if strings.HasPrefix(strings.ToLower(text), "/persona") {
		b.handlePersonaCommand(msg, strings.TrimSpace(text[len("/persona"):]))
		return
	}
	if text == "" {
		b.sendText(msg.Chat.ID, msg.MessageID, "i need some text to work with")
		return
	}

	p := b.chatPersona(msg.Chat.ID)

	if _, err := b.api.Request(tgbotapi.NewChatAction(msg.Chat.ID, tgbotapi.ChatTyping)); err != nil {
		log.Printf("failed to send chat action: %v", err)
	}

	history := b.store.Recent(msg.Chat.ID, b.cfg.HistoryLimit)
	history = append(history, domain.ChatMessage{Role: domain.RoleUser, Content: text})

	reply, err := b.svc.Complete(ctx, p.ID, history)
	if err != nil {
		if errors.Is(err, completion.ErrNotConfigured) {
			b.sendText(msg.Chat.ID, msg.MessageID, err.Error())
			return
		}
		log.Printf("completion failed for persona %s: %v", p.ID, err)
		b.sendText(msg.Chat.ID, msg.MessageID, p.FailureMessage)
		return
	}

	b.store.Add(msg.Chat.ID, domain.ChatMessage{Role: domain.RoleUser, Content: text})
	b.store.Add(msg.Chat.ID, domain.ChatMessage{Role: domain.RoleAssistant, Content: reply})

	b.sendText(msg.Chat.ID, msg.MessageID, reply)
}

func (b *Bot) handlePersonaCommand(msg *tgbotapi.Message, arg string) {
	if arg == "" {
		current := b.chatPersona(msg.Chat.ID)
		names := make([]string, 0, 2)
		for _, p := range b.svc.ListPersonas() {
			names = append(names, p.ID)
		}
		b.sendText(msg.Chat.ID, msg.MessageID, fmt.Sprintf(
			"current persona: %s\navailable: %s", current.ID, strings.Join(names, ", ")))
		return
	}

	p, ok := b.svc.Persona(arg)
	if !ok {
		b.sendText(msg.Chat.ID, msg.MessageID, fmt.Sprintf("unknown persona %q", arg))
		return
	}

	b.mu.Lock()
	b.personas[msg.Chat.ID] = p.ID
	b.mu.Unlock()
	// a persona switch starts the conversation over
	b.store.Reset(msg.Chat.ID)

	b.sendText(msg.Chat.ID, msg.MessageID, p.Greeting)
}

func (b *Bot) chatPersona(chatID int64) domain.Persona {
	b.mu.Lock()
	id := b.personas[chatID]
	b.mu.Unlock()

	if p, ok := b.svc.Persona(id); ok {
		return p
	}
	return b.svc.DefaultPersona()
}

func (b *Bot) sendText(chatID int64, replyTo int, text string) {
	const chunkSize = 2048

	chunks := splitText(text, chunkSize)
	for idx, chunk := range chunks {
		out := tgbotapi.NewMessage(chatID, chunk)
		if idx == 0 {
			out.ReplyToMessageID = replyTo
		}
		if _, err := b.api.Send(out); err != nil {
			log.Printf("failed to send reply: %v", err)
		}
	}
}

func isAllowedUser(userID int64, cfg config.Config) bool {
	if len(cfg.AllowedUserIDs) == 0 {
		return true
	}
	for _, id := range cfg.AllowedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func splitText(text string, chunkSize int) []string {
	if chunkSize <= 0 {
		return []string{text}
	}

	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/chunkSize+1)
	for start := 0; start < len(runes); start += chunkSize {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}
