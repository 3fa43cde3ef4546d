package domain

type State struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Abbreviation string `db:"abbreviation"`
	TimeZone     string `db:"time_zone"`

	// Cities is filled only by reads that ask for them.
	Cities []City `db:"-"`
}
