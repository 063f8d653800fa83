package notify

import (
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Urgency levels for notifications
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification represents a desktop notification
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
	Timeout time.Duration
	Icon    string // Optional icon name
}

// Notifier handles sending desktop notifications
type Notifier struct {
	enabled bool
}

// NewNotifier creates a new notifier
func NewNotifier() *Notifier {
	return &Notifier{
		enabled: true,
	}
}

// SetEnabled enables or disables notifications
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// IsEnabled returns whether notifications are enabled
func (n *Notifier) IsEnabled() bool {
	return n.enabled
}

// Send sends a desktop notification using notify-send
func (n *Notifier) Send(notification Notification) error {
	if !n.enabled {
		return nil
	}

	args := []string{}

	// Add urgency
	switch notification.Urgency {
	case UrgencyLow:
		args = append(args, "-u", "low")
	case UrgencyCritical:
		args = append(args, "-u", "critical")
	default:
		args = append(args, "-u", "normal")
	}

	// Add timeout (in milliseconds)
	if notification.Timeout > 0 {
		args = append(args, "-t", strconv.Itoa(int(notification.Timeout.Milliseconds())))
	}

	// Add icon if specified
	if notification.Icon != "" {
		args = append(args, "-i", notification.Icon)
	}

	// Add app name
	args = append(args, "-a", "hyprpomo")

	// Add title and body
	args = append(args, notification.Title)
	if notification.Body != "" {
		args = append(args, notification.Body)
	}

	// Execute notify-send
	cmd := exec.Command("notify-send", args...)
	return cmd.Run()
}

// SendWorkStart announces a fresh focus session
func (n *Notifier) SendWorkStart(task string) error {
	return n.Send(Notification{
		Title:   "Focus",
		Body:    "Time to work on: " + task,
		Urgency: UrgencyNormal,
		Timeout: 5 * time.Second,
		Icon:    "alarm-symbolic",
	})
}

// SendBreakStart announces the rest phase, including any minutes
// earned in flow
func (n *Notifier) SendBreakStart(minutes int, long bool) error {
	title := "Break"
	if long {
		title = "Long Break"
	}
	return n.Send(Notification{
		Title:   title,
		Body:    fmt.Sprintf("Time to relax. (%dm)", minutes),
		Urgency: UrgencyNormal,
		Timeout: 5 * time.Second,
		Icon:    "appointment-soon-symbolic",
	})
}

// SendBreakOver fires when the rest countdown runs out
func (n *Notifier) SendBreakOver() error {
	return n.Send(Notification{
		Title:   "Break Over",
		Body:    "Time to get back to work!",
		Urgency: UrgencyNormal,
		Timeout: 10 * time.Second,
		Icon:    "appointment-soon-symbolic",
	})
}

// SendLevelUp celebrates crossing a level boundary
func (n *Notifier) SendLevelUp(level int) error {
	return n.Send(Notification{
		Title:   "Level Up!",
		Body:    fmt.Sprintf("You reached Level %d", level),
		Urgency: UrgencyNormal,
		Timeout: 10 * time.Second,
		Icon:    "starred-symbolic",
	})
}
