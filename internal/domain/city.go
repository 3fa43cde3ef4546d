package domain

type City struct {
	ID      int64  `db:"id"`
	StateID int64  `db:"state_id"`
	Name    string `db:"name"`
}
