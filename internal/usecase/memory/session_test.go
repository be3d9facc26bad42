package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionDefaults(t *testing.T) {
	ctx := NewSession().Snapshot()
	assert.Equal(t, LevelBeginner, ctx.LearningLevel)
	assert.Equal(t, LanguageHinglish, ctx.PreferredLanguage)
	assert.Zero(t, ctx.MessageCount)
	assert.Zero(t, ctx.SessionDuration)
}

func TestAddMessageCounts(t *testing.T) {
	s := NewSession()
	s.AddMessage()
	s.AddMessage()
	assert.Equal(t, 2, s.Snapshot().MessageCount)
}

func TestAddTopicDedupesAndCapsRecent(t *testing.T) {
	s := NewSession()
	topics := []string{"React Basics", "Testing", "Deployment", "Security", "Performance", "Code Review"}
	for _, topic := range topics {
		s.AddTopic(topic)
	}
	s.AddTopic("Testing") // repeat is ignored

	ctx := s.Snapshot()
	assert.Len(t, ctx.Topics, len(topics))
	assert.Len(t, ctx.LastTopics, 5)
	// most recent first
	assert.Equal(t, "Code Review", ctx.LastTopics[0])
}

func TestAddInterestDedupes(t *testing.T) {
	s := NewSession()
	s.AddInterest("golang")
	s.AddInterest("golang")
	assert.Equal(t, []string{"golang"}, s.Snapshot().Interests)
}

func TestPreferencesUpdate(t *testing.T) {
	s := NewSession()
	s.SetLearningLevel(LevelAdvanced)
	s.SetPreferredLanguage(LanguageEnglish)

	ctx := s.Snapshot()
	assert.Equal(t, LevelAdvanced, ctx.LearningLevel)
	assert.Equal(t, LanguageEnglish, ctx.PreferredLanguage)
}

func TestSuggestionPrompt(t *testing.T) {
	assert.Equal(t, "Can you help me with React Basics?", SuggestionPrompt("React Basics"))
	assert.NotEmpty(t, TopicSuggestions)
}
