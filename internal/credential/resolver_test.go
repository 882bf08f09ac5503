package credential

import (
	"context"
	"errors"
	"testing"
	"time"

	jose "github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakePrompter struct {
	value string
	err   error
	calls int
}

func (p *fakePrompter) PromptToken(context.Context) (string, error) {
	p.calls++
	return p.value, p.err
}

func env(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	sig, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: []byte("0123456789abcdef0123456789abcdef")},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	require.NoError(t, err)
	raw, err := jwt.Signed(sig).Claims(claims).Serialize()
	require.NoError(t, err)
	return raw
}

func TestResolve_FromEnv(t *testing.T) {
	p := &fakePrompter{value: "typed"}
	r := &Resolver{Getenv: env(map[string]string{EnvVar: "  env-token \n"}), Prompt: p}

	tok, err := r.Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "env-token", tok)
	assert.Zero(t, p.calls, "prompt is skipped when the env var is set")
}

func TestResolve_PromptStripsQuotes(t *testing.T) {
	p := &fakePrompter{value: `"abc.def"`}
	r := &Resolver{Getenv: env(nil), Prompt: p}

	tok, err := r.Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "abc.def", tok)
	assert.Equal(t, 1, p.calls)
}

func TestResolve_EmptyPromptFails(t *testing.T) {
	for _, typed := range []string{"", "   ", `""`, `" "`} {
		r := &Resolver{Getenv: env(nil), Prompt: &fakePrompter{value: typed}}
		_, err := r.Resolve(context.Background())
		assert.ErrorIsf(t, err, ErrMissingToken, "typed %q", typed)
	}
}

func TestResolve_NoPrompterFails(t *testing.T) {
	r := &Resolver{Getenv: env(nil)}
	_, err := r.Resolve(context.Background())
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestResolve_PromptError(t *testing.T) {
	aborted := errors.New("user aborted")
	r := &Resolver{Getenv: env(nil), Prompt: &fakePrompter{err: aborted}}

	_, err := r.Resolve(context.Background())
	assert.ErrorIs(t, err, aborted)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "abc", Normalize(`"abc"`))
	assert.Equal(t, "abc", Normalize(` "abc" `))
	assert.Equal(t, "abc", Normalize(`""abc`))
	assert.Equal(t, "a\"b", Normalize(`a"b`))
}

func TestInspect(t *testing.T) {
	exp := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	raw := signedToken(t, jwt.Claims{Subject: "42", Expiry: jwt.NewNumericDate(exp)})

	info, ok := Inspect(raw)
	require.True(t, ok)
	assert.Equal(t, "42", info.Subject)
	assert.True(t, info.Expiry.Equal(exp))
	assert.True(t, info.Expired(exp.Add(time.Second)))
	assert.False(t, info.Expired(exp.Add(-time.Second)))

	_, ok = Inspect("opaque-token")
	assert.False(t, ok)
}

func TestResolve_WarnsOnExpiredJWT(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	exp := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	raw := signedToken(t, jwt.Claims{Subject: "42", Expiry: jwt.NewNumericDate(exp)})

	r := &Resolver{
		Getenv: env(map[string]string{EnvVar: raw}),
		Log:    zap.New(core),
		Now:    func() time.Time { return exp.Add(time.Hour) },
	}

	tok, err := r.Resolve(context.Background())
	require.NoError(t, err, "an expired token is still handed to the server")
	assert.Equal(t, raw, tok)
	assert.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
}
