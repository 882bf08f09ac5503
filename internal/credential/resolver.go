// Package credential resolves the bearer token for a run.
package credential

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// EnvVar holds the bearer token when it is not typed in.
const EnvVar = "AUTOWATCH_TOKEN"

var ErrMissingToken = errors.New("no bearer token provided")

// Prompter asks the operator for a token.
type Prompter interface {
	PromptToken(ctx context.Context) (string, error)
}

// Resolver looks up the token in the environment, then asks the operator.
type Resolver struct {
	Getenv func(string) string // nil uses os.Getenv
	Prompt Prompter            // nil disables the interactive fallback
	Log    *zap.Logger
	Now    func() time.Time
}

// Resolve returns a non-empty token or ErrMissingToken.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	token := strings.TrimSpace(getenv(EnvVar))
	if token == "" && r.Prompt != nil {
		typed, err := r.Prompt.PromptToken(ctx)
		if err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}
		token = Normalize(typed)
	}
	if token == "" {
		return "", ErrMissingToken
	}

	r.inspect(token)
	return token, nil
}

// Normalize trims whitespace and surrounding double quotes left over from
// copying a quoted value.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.TrimSpace(s)
}

func (r *Resolver) inspect(token string) {
	log := r.Log
	if log == nil {
		return
	}
	info, ok := Inspect(token)
	if !ok {
		log.Debug("bearer token is not a JWT, skipping expiry check")
		return
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	if info.Expired(now()) {
		log.Warn("bearer token looks expired, the platform will likely reject it",
			zap.String("subject", info.Subject),
			zap.Time("expired_at", info.Expiry),
		)
		return
	}
	log.Debug("bearer token accepted", zap.String("subject", info.Subject), zap.Time("expires_at", info.Expiry))
}
