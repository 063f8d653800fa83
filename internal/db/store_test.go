package db

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelSmthSmth/HyprPomo/internal/model"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAddTask_AssignsIncreasingIDs(t *testing.T) {
	db := newTestDB(t)

	first, err := db.AddTask("refactor parser")
	require.NoError(t, err)
	second, err := db.AddTask("write docs")
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)

	require.NoError(t, db.CompleteTask(second.ID))
	third, err := db.AddTask("review PR")
	require.NoError(t, err)

	// Completed rows are retained and ids keep climbing, so a new task
	// can never collide with an old one.
	assert.Greater(t, third.ID, second.ID)
}

func TestPendingTasks_ExcludesDone(t *testing.T) {
	db := newTestDB(t)

	a, err := db.AddTask("alpha")
	require.NoError(t, err)
	b, err := db.AddTask("beta")
	require.NoError(t, err)
	c, err := db.AddTask("gamma")
	require.NoError(t, err)

	require.NoError(t, db.CompleteTask(b.ID))

	pending, err := db.PendingTasks()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, a.ID, pending[0].ID)
	assert.Equal(t, c.ID, pending[1].ID)
}

func TestCompleteTask_SetsCompletedAt(t *testing.T) {
	db := newTestDB(t)

	task, err := db.AddTask("ship release")
	require.NoError(t, err)
	require.NoError(t, db.CompleteTask(task.ID))

	got, err := db.GetTask(task.ID)
	require.NoError(t, err)
	assert.True(t, got.Done)
	require.NotNil(t, got.CompletedAt)
	assert.WithinDuration(t, time.Now(), *got.CompletedAt, 5*time.Second)

	// Completing again is harmless.
	assert.NoError(t, db.CompleteTask(task.ID))
}

func TestCompleteTask_UnknownID(t *testing.T) {
	db := newTestDB(t)

	_, err := db.AddTask("only task")
	require.NoError(t, err)

	err = db.CompleteTask(999)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	pending, err := db.PendingTasks()
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestGetTask_UnknownID(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetTask(42)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestProfile_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	err := db.Transaction(func(tx *sql.Tx) error {
		p, err := GetProfileTx(tx)
		if err != nil {
			return err
		}
		p.TotalXP = 1250
		p.SessionsCompleted = 9
		p.FocusMinutes = 230
		p.SessionsToday = 3
		p.BountyDate = "2026-08-24"
		return SaveProfileTx(tx, p)
	})
	require.NoError(t, err)

	got, err := db.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, 1250, got.TotalXP)
	assert.Equal(t, 9, got.SessionsCompleted)
	assert.Equal(t, 230, got.FocusMinutes)
	assert.Equal(t, 3, got.SessionsToday)
	assert.Equal(t, "2026-08-24", got.BountyDate)
}

func TestReplaceBounties_ResetsProgress(t *testing.T) {
	db := newTestDB(t)

	seed := []model.Bounty{
		{Kind: model.BountyMarathon, Text: "Marathon: Complete 4 sessions", RewardXP: 100, Target: 4, Progress: 3, Completed: true},
		{Kind: model.BountyEarlyBird, Text: "Early Bird: Finish a session before 9AM", RewardXP: 50, Target: 1},
	}
	err := db.Transaction(func(tx *sql.Tx) error {
		return ReplaceBountiesTx(tx, seed)
	})
	require.NoError(t, err)

	bounties, err := db.Bounties()
	require.NoError(t, err)
	require.Len(t, bounties, 2)
	for _, b := range bounties {
		assert.Zero(t, b.Progress, "bounty %s", b.Kind)
		assert.False(t, b.Completed, "bounty %s", b.Kind)
	}
	assert.Equal(t, model.BountyMarathon, bounties[0].Kind)
	assert.Equal(t, 100, bounties[0].RewardXP)
	assert.Equal(t, 4, bounties[0].Target)
}

func TestUpdateBounty_PersistsProgress(t *testing.T) {
	db := newTestDB(t)

	err := db.Transaction(func(tx *sql.Tx) error {
		return ReplaceBountiesTx(tx, []model.Bounty{
			{Kind: model.BountyMarathon, Text: "Marathon: Complete 4 sessions", RewardXP: 100, Target: 4},
		})
	})
	require.NoError(t, err)

	err = db.Transaction(func(tx *sql.Tx) error {
		bounties, err := BountiesTx(tx)
		if err != nil {
			return err
		}
		b := bounties[0]
		b.Progress = 4
		b.Completed = true
		return UpdateBountyTx(tx, b)
	})
	require.NoError(t, err)

	bounties, err := db.Bounties()
	require.NoError(t, err)
	require.Len(t, bounties, 1)
	assert.Equal(t, 4, bounties[0].Progress)
	assert.True(t, bounties[0].Completed)
}

func TestInsertSessionLog_GeneratesID(t *testing.T) {
	db := newTestDB(t)

	var id string
	err := db.Transaction(func(tx *sql.Tx) error {
		var err error
		id, err = InsertSessionLogTx(tx, model.SessionLog{
			Task:        "General Focus",
			StartedAt:   time.Now().Add(-30 * time.Minute),
			WorkMinutes: 25,
			FlowMinutes: 5,
			XPAwarded:   350,
		})
		return err
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	count, err := db.CountSessionLogs()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
