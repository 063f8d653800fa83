package notify

import (
	"os/exec"

	"github.com/SamuelSmthSmth/HyprPomo/internal/config"
)

// Player starts phase sounds via paplay. Playback is detached and
// failures are ignored; a missing binary or sound file must not
// disturb the timer.
type Player struct {
	cfg config.Sounds
}

// NewPlayer returns a player honoring the configured sound settings.
func NewPlayer(cfg config.Sounds) *Player {
	return &Player{cfg: cfg}
}

// PlayWork starts the work phase sound, if configured.
func (p *Player) PlayWork() { p.play(p.cfg.Work) }

// PlayBreak starts the break phase sound. Short and long breaks share
// one sound.
func (p *Player) PlayBreak() { p.play(p.cfg.Break) }

func (p *Player) play(path string) {
	if !p.cfg.Enabled || path == "" {
		return
	}
	cmd := exec.Command("paplay", path)
	go func() { _ = cmd.Run() }()
}
