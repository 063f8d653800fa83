package game

import (
	"database/sql"
	"math/rand"
	"time"

	"github.com/SamuelSmthSmth/HyprPomo/internal/config"
	"github.com/SamuelSmthSmth/HyprPomo/internal/db"
	"github.com/SamuelSmthSmth/HyprPomo/internal/model"
	"github.com/SamuelSmthSmth/HyprPomo/internal/session"
)

// Progress applies session outcomes to the stored profile. All writes
// for one event happen in a single transaction, so a crash can never
// leave XP without its session log or a paid bounty without its
// completed flag.
type Progress struct {
	store *db.DB
	bal   config.GameBalance
	now   func() time.Time
	rng   *rand.Rand
}

// NewProgress wires the progression layer to its store.
func NewProgress(store *db.DB, bal config.GameBalance) *Progress {
	return &Progress{
		store: store,
		bal:   bal,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(int64(rand.Uint64()))),
	}
}

// Award is the result of banking one completed work session.
type Award struct {
	BaseXP   int
	FlowXP   int
	BountyXP int
	// Completed lists the bounties this session finished.
	Completed     []model.Bounty
	LevelBefore   int
	LevelAfter    int
	TotalXP       int
	SessionsToday int
}

// XP is the session's combined payout.
func (a *Award) XP() int {
	return a.BaseXP + a.FlowXP + a.BountyXP
}

// Refresh rolls the daily bounty set when the stored date is not
// today. Safe to call on every invocation; same-day calls change
// nothing.
func (p *Progress) Refresh() error {
	return p.store.Transaction(func(tx *sql.Tx) error {
		_, err := p.refreshTx(tx)
		return err
	})
}

// Snapshot refreshes the daily state and returns the current profile
// and bounty set.
func (p *Progress) Snapshot() (*model.Profile, []model.Bounty, error) {
	var (
		profile  *model.Profile
		bounties []model.Bounty
	)
	err := p.store.Transaction(func(tx *sql.Tx) error {
		var err error
		profile, err = p.refreshTx(tx)
		if err != nil {
			return err
		}
		bounties, err = db.BountiesTx(tx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return profile, bounties, nil
}

// CompleteWork banks a finished work session: base and flow XP, the
// daily counters, bounty progress and the session log.
func (p *Progress) CompleteWork(task string, startedAt time.Time, out session.Outcome) (*Award, error) {
	award := &Award{}

	err := p.store.Transaction(func(tx *sql.Tx) error {
		profile, err := p.refreshTx(tx)
		if err != nil {
			return err
		}

		award.LevelBefore = Level(profile.TotalXP)
		award.BaseXP = WorkXP(p.bal, out.WorkMinutes)
		award.FlowXP = FlowXP(p.bal, out.FlowMinutes)

		total := out.WorkMinutes + out.FlowMinutes
		profile.SessionsCompleted++
		profile.SessionsToday++
		profile.FocusMinutes += total

		facts := SessionFacts{
			Minutes: total,
			EndedAt: out.EndedAt,
			Paused:  out.Paused,
		}
		bounties, err := db.BountiesTx(tx)
		if err != nil {
			return err
		}
		for i := range bounties {
			b := &bounties[i]
			if Evaluate(b, facts) {
				award.BountyXP += b.RewardXP
				award.Completed = append(award.Completed, *b)
			}
			if err := db.UpdateBountyTx(tx, *b); err != nil {
				return err
			}
		}

		profile.TotalXP += award.XP()
		if err := db.SaveProfileTx(tx, profile); err != nil {
			return err
		}

		if _, err := db.InsertSessionLogTx(tx, model.SessionLog{
			Task:        task,
			StartedAt:   startedAt,
			WorkMinutes: out.WorkMinutes,
			FlowMinutes: out.FlowMinutes,
			XPAwarded:   award.XP(),
		}); err != nil {
			return err
		}

		award.TotalXP = profile.TotalXP
		award.LevelAfter = Level(profile.TotalXP)
		award.SessionsToday = profile.SessionsToday
		return nil
	})
	if err != nil {
		return nil, err
	}
	return award, nil
}

// SkipBreak awards consolation XP for skipped rest. Counters and
// bounties are untouched; only whole skipped minutes pay out.
func (p *Progress) SkipBreak(minutes int) (int, error) {
	xp := BreakSkipXP(p.bal, minutes)
	if xp == 0 {
		return 0, nil
	}

	err := p.store.Transaction(func(tx *sql.Tx) error {
		profile, err := db.GetProfileTx(tx)
		if err != nil {
			return err
		}
		profile.TotalXP += xp
		return db.SaveProfileTx(tx, profile)
	})
	if err != nil {
		return 0, err
	}
	return xp, nil
}

// refreshTx rolls the bounty set and resets the daily session counter
// when the profile's bounty date is stale. Returns the up-to-date
// profile either way.
func (p *Progress) refreshTx(tx *sql.Tx) (*model.Profile, error) {
	profile, err := db.GetProfileTx(tx)
	if err != nil {
		return nil, err
	}

	today := p.now().Format("2006-01-02")
	if profile.BountyDate == today {
		return profile, nil
	}

	if err := db.ReplaceBountiesTx(tx, DrawDaily(p.rng)); err != nil {
		return nil, err
	}
	profile.BountyDate = today
	profile.SessionsToday = 0
	if err := db.SaveProfileTx(tx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
