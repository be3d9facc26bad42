package completion

import (
	"errors"
	"strings"
)

// ErrNotConfigured means the upstream credential is missing from the
// environment. It is checked per request, not at startup.
var ErrNotConfigured = errors.New("OpenAI API key not configured. Please add OPENAI_API_KEY to your environment variables.")

// Kind buckets upstream failures into the proxy's response taxonomy.
type Kind int

const (
	KindInternal Kind = iota
	KindAuth
	KindQuota
)

// Classify inspects the failure text the same way the proxy's clients do:
// by substring. The upstream SDK folds HTTP-level detail into the error
// message, so matching on it is the only signal available without pinning
// the provider's error types.
func Classify(err error) Kind {
	if err == nil {
		return KindInternal
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key"):
		return KindAuth
	case strings.Contains(msg, "quota"):
		return KindQuota
	default:
		return KindInternal
	}
}

const (
	AuthErrorMessage  = "API key issue. Please check your OpenAI API key configuration."
	QuotaErrorMessage = "OpenAI quota exceeded. Please check your billing."
)
