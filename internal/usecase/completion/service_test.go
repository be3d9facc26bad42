package completion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persona-chat/internal/config"
	"persona-chat/internal/domain"
	"persona-chat/internal/persona"
	"persona-chat/internal/usecase/completion"
)

type fakeClient struct {
	reply string
	err   error
	got   []completion.Request
}

func (f *fakeClient) Complete(_ context.Context, req completion.Request) (string, error) {
	f.got = append(f.got, req)
	return f.reply, f.err
}

func newService(t *testing.T, client completion.Client, key string) *completion.Service {
	t.Helper()
	registry, err := persona.NewRegistry(persona.Defaults(), "")
	require.NoError(t, err)
	return completion.NewService(client, registry, config.Config{OpenAIKey: key})
}

func TestCompletePrependsSystemPrompt(t *testing.T) {
	client := &fakeClient{reply: "chai aur code"}
	svc := newService(t, client, "sk-test")

	history := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "hi"},
		{Role: domain.RoleAssistant, Content: "hello"},
		{Role: domain.RoleUser, Content: "teach me go"},
	}
	reply, err := svc.Complete(context.Background(), "hitesh", history)
	require.NoError(t, err)
	assert.Equal(t, "chai aur code", reply)

	require.Len(t, client.got, 1)
	req := client.got[0]
	require.Len(t, req.Messages, 4)
	assert.Equal(t, domain.RoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "Hitesh Choudhary")
	// input history forwarded verbatim, in order
	assert.Equal(t, history, req.Messages[1:])
}

func TestCompleteAppliesPersonaSampling(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	svc := newService(t, client, "sk-test")

	_, err := svc.Complete(context.Background(), "hitesh", nil)
	require.NoError(t, err)
	_, err = svc.Complete(context.Background(), "piyush", nil)
	require.NoError(t, err)

	require.Len(t, client.got, 2)

	hitesh := client.got[0]
	assert.Equal(t, "gpt-4o-mini", hitesh.Model)
	assert.InDelta(t, 0.85, hitesh.Temperature, 0.001)
	assert.Equal(t, 1200, hitesh.MaxTokens)
	assert.InDelta(t, 0.1, hitesh.PresencePenalty, 0.001)
	assert.InDelta(t, 0.1, hitesh.FrequencyPenalty, 0.001)

	piyush := client.got[1]
	assert.InDelta(t, 0.8, piyush.Temperature, 0.001)
	assert.Equal(t, 1000, piyush.MaxTokens)
	assert.Zero(t, piyush.PresencePenalty)
	assert.Zero(t, piyush.FrequencyPenalty)
}

func TestCompleteRequiresCredential(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	svc := newService(t, client, "")

	_, err := svc.Complete(context.Background(), "hitesh", nil)
	assert.ErrorIs(t, err, completion.ErrNotConfigured)
	// the check happens before any other work
	assert.Empty(t, client.got)
}

func TestCompleteUnknownPersona(t *testing.T) {
	svc := newService(t, &fakeClient{}, "sk-test")

	_, err := svc.Complete(context.Background(), "nobody", nil)
	assert.ErrorIs(t, err, persona.ErrUnknown)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want completion.Kind
	}{
		{"api key", errors.New("error, status code: 401, message: Incorrect API key provided"), completion.KindAuth},
		{"quota", errors.New("error, status code: 429, message: You exceeded your current quota"), completion.KindQuota},
		{"other", errors.New("connection refused"), completion.KindInternal},
		{"nil", nil, completion.KindInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, completion.Classify(tc.err))
		})
	}
}
