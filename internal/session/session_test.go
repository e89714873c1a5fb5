package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prembandhan/matchclient/internal/config"
	"github.com/prembandhan/matchclient/internal/logger"
)

func tokenPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "token.json")
}

func TestSessionStartsSignedOut(t *testing.T) {
	s, err := NewFileSession(config.ClientApp{TokenFile: tokenPath(t)}, logger.Nop())
	require.NoError(t, err)

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	assert.False(t, s.Expired())
}

func TestSessionSetTokenPersists(t *testing.T) {
	path := tokenPath(t)

	s, err := NewFileSession(config.ClientApp{TokenFile: path}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.SetToken("Bearer abc.def.ghi"))
	assert.True(t, s.Authenticated())
	assert.Equal(t, "abc.def.ghi", s.Token())

	// a fresh session picks the token back up from disk
	restored, err := NewFileSession(config.ClientApp{TokenFile: path}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", restored.Token())
}

func TestSessionPersistedFileUsesStorageKey(t *testing.T) {
	path := tokenPath(t)

	s, err := NewFileSession(config.ClientApp{TokenFile: path}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SetToken("abc.def.ghi"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	stored := map[string]string{}
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, "abc.def.ghi", stored["prembandhanToken"])
}

func TestSessionConfiguredTokenWins(t *testing.T) {
	path := tokenPath(t)

	first, err := NewFileSession(config.ClientApp{TokenFile: path}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.SetToken("persisted.token.value"))

	s, err := NewFileSession(config.ClientApp{Token: "configured.token.value", TokenFile: path}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "configured.token.value", s.Token())
}

func TestSessionClear(t *testing.T) {
	path := tokenPath(t)

	s, err := NewFileSession(config.ClientApp{TokenFile: path}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SetToken("abc.def.ghi"))

	require.NoError(t, s.Clear())
	assert.False(t, s.Authenticated())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSessionNotifiesListeners(t *testing.T) {
	s, err := NewFileSession(config.ClientApp{TokenFile: tokenPath(t)}, logger.Nop())
	require.NoError(t, err)

	var seen []string
	s.Subscribe(func(token string) { seen = append(seen, token) })

	require.NoError(t, s.SetToken("one.two.three"))
	require.NoError(t, s.Clear())

	assert.Equal(t, []string{"one.two.three", ""}, seen)
}

func TestSessionEmptySetTokenClears(t *testing.T) {
	s, err := NewFileSession(config.ClientApp{TokenFile: tokenPath(t)}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SetToken("abc.def.ghi"))

	require.NoError(t, s.SetToken(""))
	assert.False(t, s.Authenticated())
}

func TestSessionUnreadableTokenFileIgnored(t *testing.T) {
	path := tokenPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s, err := NewFileSession(config.ClientApp{TokenFile: path}, logger.Nop())
	require.NoError(t, err)
	assert.False(t, s.Authenticated())
}
