package domain

// Persona is a static chatbot identity. Descriptors are loaded once at
// process start and never mutated afterwards.
type Persona struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`

	// Greeting seeds a fresh conversation when the persona becomes active.
	Greeting string `yaml:"greeting"`

	// Endpoint is the proxy path the client pipeline posts to.
	Endpoint string `yaml:"endpoint"`

	// Prompt is the full system instruction prepended to every upstream call.
	Prompt string `yaml:"prompt"`

	Model            string  `yaml:"model"`
	Temperature      float32 `yaml:"temperature"`
	MaxTokens        int     `yaml:"max_tokens"`
	PresencePenalty  float32 `yaml:"presence_penalty"`
	FrequencyPenalty float32 `yaml:"frequency_penalty"`

	// QuickReplies are canned openers the rendering layer may offer.
	QuickReplies []string `yaml:"quick_replies"`

	// FailureMessage is the persona-flavored error string the proxy returns
	// for failures that are neither auth nor quota related.
	FailureMessage string `yaml:"failure_message"`
}
