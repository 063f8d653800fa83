package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Work:       25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

func TestEngine_TickCountsDown(t *testing.T) {
	e := New(testConfig())

	e.Tick(1 * time.Minute)

	assert.Equal(t, PhaseWork, e.Phase())
	assert.Equal(t, 24*time.Minute, e.Remaining())
	assert.Equal(t, time.Duration(0), e.Overtime())
}

func TestEngine_WorkExpiryEntersFlow(t *testing.T) {
	e := New(testConfig())

	e.Tick(25 * time.Minute)
	assert.Equal(t, PhaseFlow, e.Phase())

	// Flow has no deadline; the clock keeps counting up.
	e.Tick(90 * time.Second)
	assert.Equal(t, PhaseFlow, e.Phase())
	assert.Equal(t, 90*time.Second, e.Overtime())
	assert.False(t, e.Done())
}

func TestEngine_PauseFreezesClock(t *testing.T) {
	e := New(testConfig())

	e.Tick(5 * time.Minute)
	e.TogglePause()
	require.True(t, e.Paused())

	e.Tick(10 * time.Minute)
	assert.Equal(t, 5*time.Minute, e.Elapsed())

	e.TogglePause()
	e.Tick(1 * time.Minute)
	assert.Equal(t, 6*time.Minute, e.Elapsed())

	out, _ := e.Skip()
	require.NotNil(t, out)
	assert.True(t, out.Paused, "a session paused at any point stays marked paused")
}

func TestEngine_SkipDuringWork(t *testing.T) {
	e := New(testConfig())

	e.Tick(10*time.Minute + 30*time.Second)
	out, skip := e.Skip()

	require.NotNil(t, out)
	assert.Nil(t, skip)
	assert.Equal(t, 10, out.WorkMinutes, "partial minutes are floored")
	assert.Equal(t, 0, out.FlowMinutes)
	assert.False(t, out.LongBreak)
	assert.Equal(t, 5*time.Minute, out.BreakLength)
	assert.False(t, out.Paused)

	assert.Equal(t, PhaseBreak, e.Phase())
	assert.Equal(t, 5*time.Minute, e.Remaining())
}

func TestEngine_FlowExtendsBreak(t *testing.T) {
	e := New(testConfig())

	e.Tick(25 * time.Minute)
	e.Tick(5*time.Minute + 30*time.Second)

	out := e.BreakFlow()
	require.NotNil(t, out)
	assert.Equal(t, 25, out.WorkMinutes)
	assert.Equal(t, 5, out.FlowMinutes)
	assert.Equal(t, 10*time.Minute+30*time.Second, out.BreakLength, "break grows by the exact overtime")
	assert.Equal(t, PhaseBreak, e.Phase())
}

func TestEngine_BreakFlowOutsideFlow(t *testing.T) {
	e := New(testConfig())

	e.Tick(3 * time.Minute)
	assert.Nil(t, e.BreakFlow())
	assert.Equal(t, PhaseWork, e.Phase())
}

func TestEngine_FourthSessionGetsLongBreak(t *testing.T) {
	cfg := testConfig()
	cfg.CompletedToday = 3

	e := New(cfg)
	e.Tick(25 * time.Minute)
	out, _ := e.Skip()

	require.NotNil(t, out)
	assert.True(t, out.LongBreak)
	assert.Equal(t, 15*time.Minute, out.BreakLength)
	assert.Equal(t, PhaseLongBreak, e.Phase())
}

func TestEngine_SkipDuringBreakReportsRemaining(t *testing.T) {
	e := New(testConfig())
	e.Tick(25 * time.Minute)
	out, _ := e.Skip()
	require.NotNil(t, out)

	e.Tick(1*time.Minute + 10*time.Second)
	out, skip := e.Skip()

	assert.Nil(t, out)
	require.NotNil(t, skip)
	assert.Equal(t, 3, skip.RemainingMinutes)
	assert.True(t, e.Done())
	assert.Equal(t, EndBreakOver, e.EndReason())
}

func TestEngine_BreakExpiryTerminates(t *testing.T) {
	e := New(testConfig())
	e.Tick(25 * time.Minute)
	e.Skip()

	e.Tick(5 * time.Minute)
	assert.True(t, e.Done())
	assert.Equal(t, EndBreakOver, e.EndReason())

	// Terminated engines ignore further input.
	e.Tick(1 * time.Minute)
	assert.Equal(t, PhaseTerminated, e.Phase())
}

func TestEngine_QuitTerminates(t *testing.T) {
	e := New(testConfig())

	e.Tick(3 * time.Minute)
	e.Quit()

	assert.True(t, e.Done())
	assert.Equal(t, EndQuit, e.EndReason())
}

func TestEngine_SkipWorksWhilePaused(t *testing.T) {
	e := New(testConfig())

	e.Tick(12 * time.Minute)
	e.TogglePause()

	out, _ := e.Skip()
	require.NotNil(t, out)
	assert.Equal(t, 12, out.WorkMinutes)
	assert.True(t, out.Paused)

	// The break starts running.
	assert.Equal(t, PhaseBreak, e.Phase())
	assert.False(t, e.Paused())
}

func TestEngine_OutcomeTimestamp(t *testing.T) {
	e := New(testConfig())
	want := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	e.now = func() time.Time { return want }

	e.Tick(25 * time.Minute)
	out, _ := e.Skip()

	require.NotNil(t, out)
	assert.Equal(t, want, out.EndedAt)
}
