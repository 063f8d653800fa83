package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/SamuelSmthSmth/HyprPomo/internal/app"
	"github.com/SamuelSmthSmth/HyprPomo/internal/config"
	"github.com/SamuelSmthSmth/HyprPomo/internal/db"
	"github.com/SamuelSmthSmth/HyprPomo/internal/game"
	"github.com/SamuelSmthSmth/HyprPomo/internal/model"
	"github.com/SamuelSmthSmth/HyprPomo/internal/ui"
	"github.com/SamuelSmthSmth/HyprPomo/internal/ui/theme"
)

var (
	version = "0.1.0"
)

func main() {
	// Subcommand handling
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "add":
			handleAdd(os.Args[2:])
			return
		case "list":
			handleList()
			return
		case "done", "finish":
			handleDone(os.Args[2:])
			return
		case "version":
			fmt.Printf("hyprpomo v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		case "start":
			runTimer(os.Args[2:])
			return
		}
	}

	// Bare invocation, or durations and task words straight away
	runTimer(os.Args[1:])
}

func printHelp() {
	help := `hyprpomo - a pomodoro timer that levels you up

Usage:
  hyprpomo                          Start the timer (25/5/15 defaults)
  hyprpomo [durations] [task]       Start with overrides: hyprpomo 45 10 20 deep work
  hyprpomo start [durations] [task] Same as above
  hyprpomo add <task words>         Add a task to the backlog
  hyprpomo list                     Show level, bounties and pending tasks
  hyprpomo done <id>                Mark a task finished (alias: finish)
  hyprpomo version                  Show version
  hyprpomo help                     Show this help

Durations:
  Up to three leading arguments set work, short break and long break.
  Plain numbers are minutes; s, m and h suffixes also work (45, 45m, 1h).

Keybindings:
  p    Pause / resume
  s    Skip the current phase
  b    End flow and take the earned break
  j/k  Pick a task at startup
  y/n  Answer the finish prompt
  ?    Help overlay
  q    Quit

Files:
  Config:   ~/.config/hypr_pomo/config.json
  Progress: ~/.local/share/hypr_pomo/hypr_pomo.db
  Status:   $TMPDIR/hypr_pomo_status (for status bars)`

	fmt.Println(help)
}

// openStore opens the database for a one-shot command. No instance
// lock here; adding a task while a timer runs is fine.
func openStore() (*db.DB, config.Config) {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	database, err := db.Open(db.DefaultDBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return database, cfg
}

// refreshDaily rolls the bounty set if the day changed. Every command
// does this so the board is current no matter how the program is used.
func refreshDaily(database *db.DB, cfg config.Config) {
	if err := game.NewProgress(database, cfg.GameBalance).Refresh(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not roll daily bounties: %v\n", err)
	}
}

func handleAdd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: hyprpomo add <task words>")
		os.Exit(1)
	}
	name := strings.Join(args, " ")

	database, cfg := openStore()
	defer database.Close()
	refreshDaily(database, cfg)

	task, err := database.AddTask(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding task: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Added %s\n", task.Label())
}

func handleList() {
	database, cfg := openStore()
	defer database.Close()

	profile, bounties, err := game.NewProgress(database, cfg.GameBalance).Snapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading progress: %v\n", err)
		os.Exit(1)
	}

	level, into, required := game.LevelProgress(profile.TotalXP)
	fmt.Printf("Level %d | %d XP (%d/%d to next)\n", level, profile.TotalXP, into, required)
	fmt.Printf("Sessions: %d today, %d total | Focus: %dm\n", profile.SessionsToday, profile.SessionsCompleted, profile.FocusMinutes)

	fmt.Println("\nBounties:")
	for _, b := range bounties {
		line := fmt.Sprintf("  %s %s", b.StatusMark(), b.Text)
		if b.Kind == model.BountyMarathon {
			line += fmt.Sprintf(" (%d/%d)", b.Progress, b.Target)
		}
		fmt.Printf("%s +%d XP\n", line, b.RewardXP)
	}

	tasks, err := database.PendingTasks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading tasks: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\nTasks:")
	if len(tasks) == 0 {
		fmt.Println("  (none pending)")
		return
	}
	for _, t := range tasks {
		fmt.Printf("  %s\n", t.Label())
	}
}

func handleDone(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: hyprpomo done <task id>")
		os.Exit(1)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: task id must be a number, got %q\n", args[0])
		os.Exit(1)
	}

	database, cfg := openStore()
	defer database.Close()
	refreshDaily(database, cfg)

	if err := database.CompleteTask(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Done: task %d\n", id)
}

// applyDurations consumes up to three leading duration tokens as the
// work, short break and long break overrides. The remaining words
// become the task name.
func applyDurations(cfg *config.Config, args []string) (string, error) {
	slots := []*string{&cfg.Times.Work, &cfg.Times.ShortBreak, &cfg.Times.LongBreak}

	i := 0
	for i < len(args) && i < len(slots) {
		arg := args[i]
		if arg == "" || arg[0] < '0' || arg[0] > '9' {
			break
		}
		if _, err := config.ParseDuration(arg); err != nil {
			return "", fmt.Errorf("invalid duration %q", arg)
		}
		*slots[i] = arg
		i++
	}

	return strings.Join(args[i:], " "), nil
}

func runTimer(args []string) {
	if err := runTUI(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(args []string) error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	task, err := applyDurations(&cfg, args)
	if err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("hyprpomo needs an interactive terminal")
	}

	theme.SetTheme(theme.FromColors(cfg.Colors))

	application, err := app.New(&cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	p := tea.NewProgram(
		ui.NewRootModel(application, task),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
