package model

// BountyKind identifies one of the daily challenge types
type BountyKind string

const (
	BountyMarathon  BountyKind = "marathon"
	BountyDeepDive  BountyKind = "deep_dive"
	BountyEarlyBird BountyKind = "early_bird"
	BountyNightOwl  BountyKind = "night_owl"
	BountyIronWill  BountyKind = "iron_will"
)

// Bounty is one day's instance of a challenge. Three distinct kinds are
// active per calendar day; Completed is set exactly once.
type Bounty struct {
	Kind      BountyKind `json:"kind"`
	Text      string     `json:"text"`
	RewardXP  int        `json:"reward_xp"`
	Target    int        `json:"target,omitempty"` // marathon session count
	Progress  int        `json:"progress"`
	Completed bool       `json:"completed"`
}

// StatusMark returns the checkmark used by list output
func (b *Bounty) StatusMark() string {
	if b.Completed {
		return "[x]"
	}
	return "[ ]"
}
