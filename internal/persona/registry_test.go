package persona

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persona-chat/internal/domain"
)

func TestDefaultsAreComplete(t *testing.T) {
	for _, p := range Defaults() {
		t.Run(p.ID, func(t *testing.T) {
			assert.NotEmpty(t, p.DisplayName)
			assert.NotEmpty(t, p.Greeting)
			assert.NotEmpty(t, p.Prompt)
			assert.NotEmpty(t, p.Endpoint)
			assert.NotEmpty(t, p.FailureMessage)
			assert.NotEmpty(t, p.QuickReplies)
			assert.Greater(t, p.MaxTokens, 0)
			assert.Greater(t, p.Temperature, float32(0))
		})
	}
}

func TestRegistryLookup(t *testing.T) {
	r, err := NewRegistry(Defaults(), "")
	require.NoError(t, err)

	p, ok := r.Get("hitesh")
	require.True(t, ok)
	assert.Equal(t, "Hitesh Choudhary", p.DisplayName)

	_, ok = r.Get("nobody")
	assert.False(t, ok)

	assert.Equal(t, "hitesh", r.Default().ID)
	assert.Len(t, r.List(), 2)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]domain.Persona{{ID: "a"}, {ID: "a"}}, "")
	assert.Error(t, err)
}

func TestRegistryFillsDefaults(t *testing.T) {
	r, err := NewRegistry([]domain.Persona{{ID: "solo"}}, "")
	require.NoError(t, err)

	p, _ := r.Get("solo")
	assert.Equal(t, "/api/chat/solo", p.Endpoint)
	assert.Equal(t, defaultModel, p.Model)
}

func TestRegistryAppliesConfiguredModel(t *testing.T) {
	// the deployment-wide model (OPENAI_MODEL) reaches every persona that
	// does not pin its own
	r, err := NewRegistry(Defaults(), "gpt-4o")
	require.NoError(t, err)
	for _, p := range r.List() {
		assert.Equal(t, "gpt-4o", p.Model)
	}

	// an explicit per-persona model wins over the configured default
	r, err = NewRegistry([]domain.Persona{{ID: "pinned", Model: "gpt-4.1"}}, "gpt-4o")
	require.NoError(t, err)
	p, _ := r.Get("pinned")
	assert.Equal(t, "gpt-4.1", p.Model)
}

func TestLoadFileMergesBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
personas:
  - id: hitesh
    display_name: Hitesh Choudhary
    temperature: 0.5
    max_tokens: 600
`), 0o644))

	personas, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, personas, 1)

	p := personas[0]
	assert.InDelta(t, 0.5, p.Temperature, 0.001)
	assert.Equal(t, 600, p.MaxTokens)
	// prompt, greeting, and quick replies fall back to the builtin persona
	assert.Equal(t, hiteshPrompt, p.Prompt)
	assert.NotEmpty(t, p.Greeting)
	assert.NotEmpty(t, p.QuickReplies)
	assert.NotEmpty(t, p.FailureMessage)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("personas: []"), 0o644))
	_, err = LoadFile(empty)
	assert.Error(t, err)
}
