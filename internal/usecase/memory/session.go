// Package memory tracks lightweight, session-scoped conversation context:
// counters, topics, and preferences the rendering layer shows alongside the
// chat. Nothing here survives the process.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageHinglish Language = "hinglish"
	LanguageHindi    Language = "hindi"
)

const lastTopicsLimit = 5

// Context is a read-only snapshot of the session state.
type Context struct {
	Topics            []string
	LastTopics        []string
	Interests         []string
	LearningLevel     Level
	PreferredLanguage Language
	SessionDuration   time.Duration
	MessageCount      int
}

type Session struct {
	mu        sync.Mutex
	topics    []string
	last      []string
	interests []string
	level     Level
	language  Language
	seconds   int
	messages  int
}

func NewSession() *Session {
	return &Session{
		level:    LevelBeginner,
		language: LanguageHinglish,
	}
}

func (s *Session) AddMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages++
}

// AddTopic records a topic once; repeats only refresh the recent list.
func (s *Session) AddTopic(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.topics {
		if t == topic {
			return
		}
	}
	s.topics = append(s.topics, topic)
	s.last = append([]string{topic}, s.last...)
	if len(s.last) > lastTopicsLimit {
		s.last = s.last[:lastTopicsLimit]
	}
}

func (s *Session) AddInterest(interest string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, i := range s.interests {
		if i == interest {
			return
		}
	}
	s.interests = append(s.interests, interest)
}

func (s *Session) SetLearningLevel(level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
}

func (s *Session) SetPreferredLanguage(lang Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

// RunClock ticks the session duration once per second until ctx is done.
func (s *Session) RunClock(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			s.seconds++
			s.mu.Unlock()
		}
	}
}

func (s *Session) Snapshot() Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Context{
		Topics:            append([]string(nil), s.topics...),
		LastTopics:        append([]string(nil), s.last...),
		Interests:         append([]string(nil), s.interests...),
		LearningLevel:     s.level,
		PreferredLanguage: s.language,
		SessionDuration:   time.Duration(s.seconds) * time.Second,
		MessageCount:      s.messages,
	}
}

// TopicSuggestions are the canned topics the UI offers for new sessions.
var TopicSuggestions = []string{
	"React Basics",
	"JavaScript Fundamentals",
	"Node.js Backend",
	"Database Design",
	"API Development",
	"Deployment",
	"Code Review",
	"Best Practices",
	"Project Structure",
	"Testing",
	"Performance",
	"Security",
}

// SuggestionPrompt turns a selected topic into a draft message.
func SuggestionPrompt(topic string) string {
	return fmt.Sprintf("Can you help me with %s?", topic)
}
