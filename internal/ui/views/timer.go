package views

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SamuelSmthSmth/HyprPomo/internal/app"
	"github.com/SamuelSmthSmth/HyprPomo/internal/game"
	"github.com/SamuelSmthSmth/HyprPomo/internal/model"
	"github.com/SamuelSmthSmth/HyprPomo/internal/session"
	"github.com/SamuelSmthSmth/HyprPomo/internal/status"
	"github.com/SamuelSmthSmth/HyprPomo/internal/ui/theme"
)

const (
	defaultTask = "General Focus"
	barWidth    = 30
)

// quotes shown under the running clock. One is picked per invocation.
var quotes = []string{
	"Focus is the key to all success.",
	"Flow state loading...",
	"Discipline is freedom.",
	"Code is poetry.",
	"One brick at a time.",
	"Reality is created by the mind.",
	"Stay hungry, stay foolish.",
}

// TimerView drives the whole session loop: the startup task picker,
// the running clock through work, flow and breaks, and the award
// banner once a session is banked.
type TimerView struct {
	app    *app.App
	width  int
	height int

	// Task picker, shown only on bare startup with pending tasks
	picking bool
	tasks   []model.Task
	cursor  int

	// Session target. task stays nil for General Focus.
	task     *model.Task
	taskName string

	engine    *session.Engine
	startedAt time.Time
	tickGen   int

	profile  *model.Profile
	bounties []model.Bounty

	award   *game.Award
	confirm bool
	quote   string

	xpBar progress.Model

	statusMsg string
	err       error

	// startup coordination: the cycle begins once the profile is
	// loaded and the task is settled
	stateReady bool
	taskReady  bool
}

// NewTimerView creates the timer. A non-empty task skips the picker.
func NewTimerView(application *app.App, task string) TimerView {
	v := TimerView{
		app:      application,
		taskName: task,
		quote:    quotes[rand.Intn(len(quotes))],
		xpBar: progress.New(
			progress.WithSolidFill(string(theme.Current.Theme.Work)),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		),
	}
	if task != "" {
		v.taskReady = true
	}
	return v
}

// Init kicks off the state loads
func (v TimerView) Init() tea.Cmd {
	cmds := []tea.Cmd{v.loadState()}
	if !v.taskReady {
		cmds = append(cmds, v.loadTasks())
	}
	return tea.Batch(cmds...)
}

// SetSize sets the view dimensions
func (v TimerView) SetSize(width, height int) TimerView {
	v.width = width
	v.height = height
	return v
}

// Picking reports whether the task picker is on screen.
func (v TimerView) Picking() bool { return v.picking }

// Confirming reports whether the finish prompt is waiting for y/n.
func (v TimerView) Confirming() bool { return v.confirm }

// TaskName returns the session's task label.
func (v TimerView) TaskName() string { return v.taskName }

// CurrentPhase returns the engine phase, or PhaseTerminated before
// the first cycle starts.
func (v TimerView) CurrentPhase() session.Phase {
	if v.engine == nil {
		return session.PhaseTerminated
	}
	return v.engine.Phase()
}

// Paused reports whether the clock is frozen.
func (v TimerView) Paused() bool {
	return v.engine != nil && v.engine.Paused()
}

type cycleReadyMsg struct {
	profile  *model.Profile
	bounties []model.Bounty
	err      error
}

type timerTasksMsg struct {
	tasks []model.Task
	err   error
}

type timerTickMsg struct{ gen int }

type awardBankedMsg struct {
	award    *game.Award
	bounties []model.Bounty
	err      error
}

type skipBankedMsg struct {
	xp  int
	err error
}

type taskFinishedMsg struct{ err error }

// tickCmd sends tick messages every second. The generation lets a new
// cycle orphan the previous tick chain instead of doubling it.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

// loadState refreshes the daily state and fetches profile and bounties
func (v TimerView) loadState() tea.Cmd {
	return func() tea.Msg {
		profile, bounties, err := v.app.Progress.Snapshot()
		return cycleReadyMsg{profile: profile, bounties: bounties, err: err}
	}
}

// loadTasks fetches pending tasks for the picker
func (v TimerView) loadTasks() tea.Cmd {
	return func() tea.Msg {
		tasks, err := v.app.DB.PendingTasks()
		return timerTasksMsg{tasks: tasks, err: err}
	}
}

// Update handles messages
func (v TimerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cycleReadyMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.profile = msg.profile
		v.bounties = msg.bounties
		v.stateReady = true
		return v, v.maybeStart()

	case timerTasksMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		if len(msg.tasks) > 0 {
			v.picking = true
			v.tasks = msg.tasks
			return v, nil
		}
		v.taskName = defaultTask
		v.taskReady = true
		return v, v.maybeStart()

	case timerTickMsg:
		return v.handleTick(msg)

	case awardBankedMsg:
		if msg.err != nil {
			// The break keeps running; the XP is lost but the timer is not.
			v.statusMsg = fmt.Sprintf("could not bank session: %v", msg.err)
			return v, nil
		}
		v.award = msg.award
		v.bounties = msg.bounties
		v.profile.TotalXP = msg.award.TotalXP
		v.profile.SessionsToday = msg.award.SessionsToday
		if msg.award.LevelAfter > msg.award.LevelBefore {
			v.app.Notifier.SendLevelUp(msg.award.LevelAfter)
		}
		return v, nil

	case skipBankedMsg:
		if msg.err != nil {
			v.statusMsg = fmt.Sprintf("could not bank skip bonus: %v", msg.err)
			return v, nil
		}
		if msg.xp > 0 {
			v.statusMsg = fmt.Sprintf("+%d XP for skipped rest", msg.xp)
		}
		return v, nil

	case taskFinishedMsg:
		if msg.err != nil {
			v.statusMsg = fmt.Sprintf("could not complete task: %v", msg.err)
			return v, nil
		}
		v.statusMsg = fmt.Sprintf("Task done: %s", v.taskName)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v TimerView) handleTick(msg timerTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != v.tickGen || v.engine == nil || v.engine.Done() {
		return v, nil
	}

	v.engine.Tick(time.Second)
	v.app.Status.Publish(status.Token(v.engine))

	if v.engine.Done() {
		// Break ran out on its own; roll into the next session.
		v.app.Notifier.SendBreakOver()
		return v, v.afterBreak(0)
	}
	return v, tickCmd(v.tickGen)
}

func (v TimerView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v.statusMsg = ""

	key := msg.String()

	// Quit works everywhere, including while paused.
	if key == "q" || key == "ctrl+c" {
		return v, v.shutdown()
	}

	if v.picking {
		switch key {
		case "j", "down":
			if v.cursor < len(v.tasks) {
				v.cursor++
			}
		case "k", "up":
			if v.cursor > 0 {
				v.cursor--
			}
		case "enter":
			v.picking = false
			v.taskReady = true
			if v.cursor == 0 {
				v.taskName = defaultTask
			} else {
				t := v.tasks[v.cursor-1]
				v.task = &t
				v.taskName = t.Name
			}
			return v, v.maybeStart()
		}
		return v, nil
	}

	if v.engine == nil {
		return v, nil
	}

	if v.confirm {
		switch key {
		case "y":
			v.confirm = false
			return v, v.finishTask()
		case "n":
			v.confirm = false
			return v, nil
		}
	}

	switch key {
	case "p":
		v.engine.TogglePause()
		if v.engine.Paused() {
			v.statusMsg = "Paused"
		} else {
			v.statusMsg = "Resumed"
		}
		v.app.Status.Publish(status.Token(v.engine))
		return v, nil

	case "s":
		out, skip := v.engine.Skip()
		if out != nil {
			return v, v.enterBreak(out)
		}
		if skip != nil {
			return v, v.afterBreak(skip.RemainingMinutes)
		}
		return v, nil

	case "b":
		if out := v.engine.BreakFlow(); out != nil {
			return v, v.enterBreak(out)
		}
		return v, nil
	}

	return v, nil
}

// maybeStart begins a cycle once the profile is loaded and a task is
// settled
func (v *TimerView) maybeStart() tea.Cmd {
	if !v.stateReady || !v.taskReady || v.picking || v.engine != nil {
		return nil
	}
	return v.startCycle()
}

// startCycle spins up a fresh engine for one work -> flow -> break
// round
func (v *TimerView) startCycle() tea.Cmd {
	v.engine = session.New(session.Config{
		Work:           v.app.Config.WorkDuration(),
		ShortBreak:     v.app.Config.ShortBreakDuration(),
		LongBreak:      v.app.Config.LongBreakDuration(),
		CompletedToday: v.profile.SessionsToday,
	})
	v.startedAt = time.Now()
	v.award = nil
	v.confirm = false
	v.quote = quotes[rand.Intn(len(quotes))]
	v.tickGen++

	v.app.Status.Publish(status.Token(v.engine))
	v.app.Notifier.SendWorkStart(v.taskName)
	v.app.Sounds.PlayWork()

	return tickCmd(v.tickGen)
}

// enterBreak banks the finished work phase. The engine has already
// moved to the break; the award lands async and fills the banner.
func (v *TimerView) enterBreak(out *session.Outcome) tea.Cmd {
	v.confirm = v.task != nil
	v.app.Status.Publish(status.Token(v.engine))
	v.app.Notifier.SendBreakStart(int(out.BreakLength.Minutes()), out.LongBreak)
	v.app.Sounds.PlayBreak()

	task := v.taskName
	startedAt := v.startedAt
	prog := v.app.Progress
	store := v.app.DB
	return func() tea.Msg {
		award, err := prog.CompleteWork(task, startedAt, *out)
		if err != nil {
			return awardBankedMsg{err: err}
		}
		bounties, err := store.Bounties()
		return awardBankedMsg{award: award, bounties: bounties, err: err}
	}
}

// afterBreak closes the rest phase and rolls into the next session.
// skippedMinutes is the rest given up, zero when the break ran its
// course.
func (v *TimerView) afterBreak(skippedMinutes int) tea.Cmd {
	v.engine = nil
	v.award = nil
	v.confirm = false

	if skippedMinutes > 0 {
		prog := v.app.Progress
		bank := func() tea.Msg {
			xp, err := prog.SkipBreak(skippedMinutes)
			return skipBankedMsg{xp: xp, err: err}
		}
		return tea.Sequence(bank, v.loadState())
	}
	return v.loadState()
}

func (v *TimerView) finishTask() tea.Cmd {
	task := v.task
	store := v.app.DB
	return func() tea.Msg {
		return taskFinishedMsg{err: store.CompleteTask(task.ID)}
	}
}

func (v TimerView) shutdown() tea.Cmd {
	if v.engine != nil {
		v.engine.Quit()
	}
	v.app.Status.Clear()
	return tea.Quit
}

// View renders the timer
func (v TimerView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}
	if v.err != nil {
		return lipgloss.NewStyle().
			Foreground(theme.Color("red")).
			Render(fmt.Sprintf("error: %v", v.err))
	}
	if v.picking {
		return v.renderPicker()
	}
	if v.engine == nil {
		return "Loading..."
	}
	return v.renderTimer()
}

// renderPicker renders the startup task list
func (v TimerView) renderPicker() string {
	styles := theme.Current.Styles

	var b strings.Builder
	b.WriteString(styles.Title.Render("Pick a task to focus on"))
	b.WriteString("\n\n")

	entries := make([]string, 0, len(v.tasks)+1)
	entries = append(entries, defaultTask)
	for _, t := range v.tasks {
		entries = append(entries, t.Label())
	}

	for i, entry := range entries {
		cursor := "  "
		style := styles.TaskNormal
		if i == v.cursor {
			cursor = "> "
			style = styles.TaskSelected
		}
		b.WriteString(style.Render(cursor + entry))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Faint.Render("enter starts the session"))
	return b.String()
}

// renderTimer renders the running clock and everything under it
func (v TimerView) renderTimer() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme
	e := v.engine

	var label, face string
	var color lipgloss.Color
	var frac float64

	switch e.Phase() {
	case session.PhaseWork:
		label = "WORK"
		face = clockFace(e.Remaining())
		color = t.Work
		frac = float64(e.Elapsed()) / float64(e.Planned())
	case session.PhaseFlow:
		label = "FLOW"
		face = "+" + clockFace(e.Overtime())
		color = t.Work
		frac = 1
	case session.PhaseBreak:
		label = "BREAK"
		face = clockFace(e.Remaining())
		color = t.Break
		frac = float64(e.Elapsed()) / float64(e.Planned())
	case session.PhaseLongBreak:
		label = "LONG BREAK"
		face = clockFace(e.Remaining())
		color = t.Break
		frac = float64(e.Elapsed()) / float64(e.Planned())
	}
	if e.Paused() {
		label += " (paused)"
		color = t.Pause
	}

	labelStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(color)

	boxStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color)

	filled := int(frac * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	barStyle := lipgloss.NewStyle().Foreground(color)

	timer := lipgloss.JoinVertical(lipgloss.Center,
		labelStyle.Render(label),
		boxStyle.Render(face),
		barStyle.Render(bar),
	)

	level, into, required := game.LevelProgress(v.profile.TotalXP)
	xpLine := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Title.Render(fmt.Sprintf("Lv %d ", level)),
		v.xpBar.ViewAs(float64(into)/float64(required)),
		styles.Faint.Render(fmt.Sprintf(" %d/%d XP", into, required)),
	)

	var sections []string
	sections = append(sections, timer)
	sections = append(sections, "")
	sections = append(sections, styles.Faint.Render("Working on: ")+styles.Subtitle.Render(v.taskName))
	sections = append(sections, styles.Quote.Render(v.quote))
	sections = append(sections, "")
	sections = append(sections, xpLine)
	sections = append(sections, styles.Faint.Render(
		fmt.Sprintf("Sessions today: %d │ Total XP: %d", v.profile.SessionsToday, v.profile.TotalXP)))

	if v.award != nil {
		sections = append(sections, "")
		sections = append(sections, v.renderAward())
	}
	if e.Phase() == session.PhaseBreak || e.Phase() == session.PhaseLongBreak {
		sections = append(sections, "")
		sections = append(sections, v.renderBounties())
	}
	if v.confirm {
		sections = append(sections, "")
		sections = append(sections, styles.Subtitle.Render(fmt.Sprintf("Did you finish %q? (y/n)", v.taskName)))
	}
	if v.statusMsg != "" {
		sections = append(sections, "")
		sections = append(sections, styles.Faint.Render(v.statusMsg))
	}

	return strings.Join(sections, "\n")
}

// renderAward renders the banner for the session just banked
func (v TimerView) renderAward() string {
	styles := theme.Current.Styles
	a := v.award

	var lines []string
	lines = append(lines, styles.Award.Render(fmt.Sprintf("+%d XP banked", a.XP())))
	if a.FlowXP > 0 {
		lines = append(lines, styles.AwardItem.Render(fmt.Sprintf("  work %d, flow %d", a.BaseXP, a.FlowXP)))
	}
	for _, b := range a.Completed {
		lines = append(lines, styles.AwardItem.Render(fmt.Sprintf("  %s  +%d XP", b.Text, b.RewardXP)))
	}
	if a.LevelAfter > a.LevelBefore {
		lines = append(lines, styles.Award.Render(fmt.Sprintf("  LEVEL UP! You are now level %d", a.LevelAfter)))
	}
	return strings.Join(lines, "\n")
}

// renderBounties renders the daily bounty board, shown while resting
func (v TimerView) renderBounties() string {
	styles := theme.Current.Styles

	var lines []string
	lines = append(lines, styles.Title.Render("Today's bounties"))
	for _, b := range v.bounties {
		line := fmt.Sprintf("%s %s", b.StatusMark(), b.Text)
		if b.Kind == model.BountyMarathon && !b.Completed {
			line += fmt.Sprintf(" (%d/%d)", b.Progress, b.Target)
		}
		style := styles.Faint
		if b.Completed {
			style = styles.Award
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

func clockFace(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
