package game

import (
	"math/rand"
	"time"

	"github.com/SamuelSmthSmth/HyprPomo/internal/model"
)

// BountyDef is a catalog entry a daily bounty is stamped from.
type BountyDef struct {
	Kind     model.BountyKind
	Text     string
	RewardXP int
	Target   int
}

// Catalog is the full bounty pool. Daily sets are drawn from here.
var Catalog = []BountyDef{
	{Kind: model.BountyMarathon, Text: "Marathon: Complete 4 sessions", RewardXP: 100, Target: 4},
	{Kind: model.BountyDeepDive, Text: "Deep Dive: Complete a 45m+ session", RewardXP: 75, Target: 1},
	{Kind: model.BountyEarlyBird, Text: "Early Bird: Finish a session before 9AM", RewardXP: 50, Target: 1},
	{Kind: model.BountyNightOwl, Text: "Night Owl: Finish a session after 8PM", RewardXP: 50, Target: 1},
	{Kind: model.BountyIronWill, Text: "Iron Will: Complete a session without pausing", RewardXP: 60, Target: 1},
}

// DailyCount is how many bounties are active on any given day.
const DailyCount = 3

// DrawDaily picks a fresh set of distinct bounties for the day.
func DrawDaily(r *rand.Rand) []model.Bounty {
	drawn := make([]model.Bounty, 0, DailyCount)
	for _, i := range r.Perm(len(Catalog))[:DailyCount] {
		def := Catalog[i]
		drawn = append(drawn, model.Bounty{
			Kind:     def.Kind,
			Text:     def.Text,
			RewardXP: def.RewardXP,
			Target:   def.Target,
		})
	}
	return drawn
}

// SessionFacts is what a completed work session exposes to bounty
// evaluation.
type SessionFacts struct {
	// Minutes counts focused plus flow minutes.
	Minutes int
	EndedAt time.Time
	Paused  bool
}

// Evaluate applies one completed session to a bounty and reports
// whether the bounty completed just now. Completed bounties are left
// untouched so the reward cannot be paid twice.
func Evaluate(b *model.Bounty, f SessionFacts) bool {
	if b.Completed {
		return false
	}

	switch b.Kind {
	case model.BountyMarathon:
		b.Progress++
		if b.Progress >= b.Target {
			b.Completed = true
		}
	case model.BountyDeepDive:
		if f.Minutes > 45 {
			b.Progress = b.Target
			b.Completed = true
		}
	case model.BountyEarlyBird:
		if f.EndedAt.Hour() < 9 {
			b.Progress = b.Target
			b.Completed = true
		}
	case model.BountyNightOwl:
		if f.EndedAt.Hour() >= 20 {
			b.Progress = b.Target
			b.Completed = true
		}
	case model.BountyIronWill:
		if !f.Paused {
			b.Progress = b.Target
			b.Completed = true
		}
	}

	return b.Completed
}
