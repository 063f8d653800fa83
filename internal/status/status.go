// Package status publishes the timer state to a well-known file for
// external consumers such as a Hyprland status bar.
package status

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SamuelSmthSmth/HyprPomo/internal/session"
)

// FileName is the file consumers poll under the system temp directory.
const FileName = "hypr_pomo_status"

// Publisher writes status tokens to a fixed path. Write failures are
// swallowed; the timer must never die because a status bar went away.
type Publisher struct {
	path string
}

// NewPublisher returns a publisher writing to the default path.
func NewPublisher() *Publisher {
	return &Publisher{path: filepath.Join(os.TempDir(), FileName)}
}

// Path is where tokens land.
func (p *Publisher) Path() string { return p.path }

// Publish replaces the current token.
func (p *Publisher) Publish(token string) {
	_ = os.WriteFile(p.path, []byte(token), 0644)
}

// Clear empties the file so bars go blank once the timer exits.
func (p *Publisher) Clear() {
	_ = os.WriteFile(p.path, nil, 0644)
}

// Token renders the engine state in the fixed bar format. Terminated
// engines render as the empty string.
func Token(e *session.Engine) string {
	switch e.Phase() {
	case session.PhaseWork:
		return "WORK " + clock(e.Remaining())
	case session.PhaseFlow:
		return "FLOW +" + clock(e.Overtime())
	case session.PhaseBreak:
		return "BREAK " + clock(e.Remaining())
	case session.PhaseLongBreak:
		return "LONG BREAK " + clock(e.Remaining())
	}
	return ""
}

func clock(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
