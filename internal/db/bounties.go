package db

import (
	"database/sql"

	"github.com/SamuelSmthSmth/HyprPomo/internal/model"
)

// Bounties returns the active daily bounty set in catalog order
func (db *DB) Bounties() ([]model.Bounty, error) {
	return listBounties(db)
}

// BountiesTx reads the bounty set inside a transaction
func BountiesTx(tx *sql.Tx) ([]model.Bounty, error) {
	return listBounties(tx)
}

// ReplaceBountiesTx swaps in a freshly drawn daily set, discarding the
// previous day's rows. Progress and completion start at zero. The
// matching bounty_date lives on the profile row and must be updated in
// the same transaction.
func ReplaceBountiesTx(tx *sql.Tx, bounties []model.Bounty) error {
	if _, err := tx.Exec(`DELETE FROM bounties`); err != nil {
		return err
	}

	for _, b := range bounties {
		_, err := tx.Exec(`
			INSERT INTO bounties (kind, text, reward_xp, target, progress, completed)
			VALUES (?, ?, ?, ?, 0, 0)
		`, string(b.Kind), b.Text, b.RewardXP, b.Target)
		if err != nil {
			return err
		}
	}

	return nil
}

// UpdateBountyTx writes back the mutable bounty fields
func UpdateBountyTx(tx *sql.Tx, b model.Bounty) error {
	completed := 0
	if b.Completed {
		completed = 1
	}
	_, err := tx.Exec(`
		UPDATE bounties SET progress = ?, completed = ?
		WHERE kind = ?
	`, b.Progress, completed, string(b.Kind))
	return err
}

func listBounties(q dbtx) ([]model.Bounty, error) {
	rows, err := q.Query(`
		SELECT kind, text, reward_xp, target, progress, completed
		FROM bounties
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bounties []model.Bounty
	for rows.Next() {
		var b model.Bounty
		var kind string
		var completed int
		if err := rows.Scan(&kind, &b.Text, &b.RewardXP, &b.Target, &b.Progress, &completed); err != nil {
			return nil, err
		}
		b.Kind = model.BountyKind(kind)
		b.Completed = completed == 1
		bounties = append(bounties, b)
	}

	return bounties, rows.Err()
}
