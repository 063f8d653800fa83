// Package session implements the work/flow/break cycle as a pure state
// machine. The engine only advances when told to via Tick, so callers
// own the clock; wall time is injected for timestamps.
package session

import "time"

// Phase is the engine's current position in the cycle.
type Phase int

const (
	// PhaseWork is the focused countdown.
	PhaseWork Phase = iota
	// PhaseFlow is overtime after the work countdown expires. The
	// clock counts up until the user ends it.
	PhaseFlow
	// PhaseBreak is the short rest countdown.
	PhaseBreak
	// PhaseLongBreak is the extended rest after every fourth session.
	PhaseLongBreak
	// PhaseTerminated means the cycle is over and the engine is inert.
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseWork:
		return "work"
	case PhaseFlow:
		return "flow"
	case PhaseBreak:
		return "break"
	case PhaseLongBreak:
		return "long break"
	case PhaseTerminated:
		return "terminated"
	}
	return "unknown"
}

// EndReason records why a terminated engine stopped.
type EndReason int

const (
	EndNone EndReason = iota
	// EndBreakOver means the break finished (or was skipped) and the
	// caller may start the next cycle.
	EndBreakOver
	// EndQuit means the user quit mid-cycle.
	EndQuit
)

// Config carries the durations for one cycle. CompletedToday is the
// number of sessions already finished today and decides whether this
// cycle's rest is the long break.
type Config struct {
	Work           time.Duration
	ShortBreak     time.Duration
	LongBreak      time.Duration
	CompletedToday int
}

// Outcome summarizes a finished work phase. Minutes are floored to
// whole minutes; partial minutes never count.
type Outcome struct {
	WorkMinutes int
	FlowMinutes int
	EndedAt     time.Time
	Paused      bool
	BreakLength time.Duration
	LongBreak   bool
}

// BreakSkip reports how much rest was given up when a break is skipped.
type BreakSkip struct {
	RemainingMinutes int
}

// Engine drives a single work -> flow -> break cycle.
type Engine struct {
	cfg     Config
	now     func() time.Time
	phase   Phase
	planned time.Duration
	elapsed time.Duration
	paused  bool

	// pausedSession latches the first pause so the outcome can report
	// whether the work phase ran uninterrupted.
	pausedSession bool
	reason        EndReason
}

// New returns an engine positioned at the start of the work phase.
func New(cfg Config) *Engine {
	return &Engine{
		cfg:     cfg,
		now:     time.Now,
		phase:   PhaseWork,
		planned: cfg.Work,
	}
}

func (e *Engine) Phase() Phase { return e.phase }

func (e *Engine) Planned() time.Duration { return e.planned }

func (e *Engine) Elapsed() time.Duration { return e.elapsed }

func (e *Engine) Paused() bool { return e.paused }

func (e *Engine) Done() bool { return e.phase == PhaseTerminated }

func (e *Engine) EndReason() EndReason { return e.reason }

// Remaining is the time left in the current countdown, clamped at zero.
func (e *Engine) Remaining() time.Duration {
	r := e.planned - e.elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Overtime is how far past the planned work duration the clock has run.
// Zero outside of flow.
func (e *Engine) Overtime() time.Duration {
	o := e.elapsed - e.planned
	if o < 0 {
		return 0
	}
	return o
}

// Tick advances the clock by d. Paused and terminated engines ignore
// ticks. Work expiry rolls into flow rather than stopping; break
// expiry terminates the cycle.
func (e *Engine) Tick(d time.Duration) {
	if e.paused || e.phase == PhaseTerminated {
		return
	}
	e.elapsed += d

	switch e.phase {
	case PhaseWork:
		if e.elapsed >= e.planned {
			e.phase = PhaseFlow
		}
	case PhaseBreak, PhaseLongBreak:
		if e.elapsed >= e.planned {
			e.phase = PhaseTerminated
			e.reason = EndBreakOver
		}
	}
}

// TogglePause freezes or resumes the clock. Pausing at any point marks
// the session as paused for the rest of the cycle.
func (e *Engine) TogglePause() {
	if e.phase == PhaseTerminated {
		return
	}
	e.paused = !e.paused
	if e.paused {
		e.pausedSession = true
	}
}

// Skip ends the current phase early. During work or flow it closes the
// work phase and returns its outcome; the engine moves to the break.
// During a break it returns the rest given up and terminates the
// cycle. Skip works while paused.
func (e *Engine) Skip() (*Outcome, *BreakSkip) {
	switch e.phase {
	case PhaseWork, PhaseFlow:
		return e.finishWork(), nil
	case PhaseBreak, PhaseLongBreak:
		skip := &BreakSkip{RemainingMinutes: int(e.Remaining().Minutes())}
		e.phase = PhaseTerminated
		e.reason = EndBreakOver
		return nil, skip
	}
	return nil, nil
}

// BreakFlow ends flow and starts the earned break. Only valid in flow;
// elsewhere it returns nil and changes nothing.
func (e *Engine) BreakFlow() *Outcome {
	if e.phase != PhaseFlow {
		return nil
	}
	return e.finishWork()
}

// Quit terminates the cycle immediately, regardless of phase.
func (e *Engine) Quit() {
	e.phase = PhaseTerminated
	e.reason = EndQuit
}

// finishWork closes out the work phase and repositions the engine at
// the start of the break. Flow time extends the break minute for
// minute.
func (e *Engine) finishWork() *Outcome {
	worked := e.elapsed
	if worked > e.planned {
		worked = e.planned
	}
	overtime := e.elapsed - e.planned
	if overtime < 0 {
		overtime = 0
	}

	long := (e.cfg.CompletedToday+1)%4 == 0
	rest := e.cfg.ShortBreak
	if long {
		rest = e.cfg.LongBreak
	}
	rest += overtime

	out := &Outcome{
		WorkMinutes: int(worked.Minutes()),
		FlowMinutes: int(overtime.Minutes()),
		EndedAt:     e.now(),
		Paused:      e.pausedSession,
		BreakLength: rest,
		LongBreak:   long,
	}

	if long {
		e.phase = PhaseLongBreak
	} else {
		e.phase = PhaseBreak
	}
	e.planned = rest
	e.elapsed = 0
	e.paused = false

	return out
}
