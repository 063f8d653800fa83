package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// The defaults must now exist on disk for the user to edit
	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	partial := `{"times": {"work": "50m"}, "game_balance": {"xp_per_minute": 20}}`
	require.NoError(t, os.WriteFile(path, []byte(partial), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "50m", cfg.Times.Work)
	assert.Equal(t, "5m", cfg.Times.ShortBreak)
	assert.Equal(t, 20.0, cfg.GameBalance.XPPerMinute)
	assert.Equal(t, 2.0, cfg.GameBalance.OvertimeMultiplier)
	assert.Equal(t, "cyan", cfg.Colors.Work)
}

func TestParseDuration_Tokens(t *testing.T) {
	cases := []struct {
		token string
		want  time.Duration
	}{
		{"45", 45 * time.Minute},
		{"45m", 45 * time.Minute},
		{"90s", 90 * time.Second},
		{"1h", time.Hour},
		{"25", 25 * time.Minute},
	}
	for _, tc := range cases {
		got, err := ParseDuration(tc.token)
		require.NoError(t, err, "token %q", tc.token)
		assert.Equal(t, tc.want, got, "token %q", tc.token)
	}
}

func TestParseDuration_RejectsMalformedTokens(t *testing.T) {
	for _, token := range []string{"", "45x", "m45", "1.5h", "-5m", "0"} {
		_, err := ParseDuration(token)
		require.Error(t, err, "token %q", token)
		assert.ErrorIs(t, err, ErrInvalidDuration, "token %q", token)
	}
}

func TestDurationAccessors_FallBackOnBadTokens(t *testing.T) {
	cfg := Default()
	cfg.Times.Work = "garbage"

	assert.Equal(t, 25*time.Minute, cfg.WorkDuration())
	assert.Equal(t, 5*time.Minute, cfg.ShortBreakDuration())
	assert.Equal(t, 15*time.Minute, cfg.LongBreakDuration())
}
