package domain

// Ledger is the date-by-user measurement table. Rows are keyed by civil
// date (YYYY-MM-DD), columns by user identifier. Every row holds exactly
// one cell per column: a user that did not report on a date has 0.0 there,
// never a missing cell. Row and column order is insertion order and is
// preserved across serialization round-trips.
type Ledger struct {
	users []string
	dates []string
	cells map[string]map[string]float64
}

// NewLedger returns an empty ledger with no users and no rows.
func NewLedger() *Ledger {
	return &Ledger{cells: make(map[string]map[string]float64)}
}

// Users returns the column identifiers in registration order.
func (l *Ledger) Users() []string {
	out := make([]string, len(l.users))
	copy(out, l.users)
	return out
}

// Dates returns the row keys in insertion order.
func (l *Ledger) Dates() []string {
	out := make([]string, len(l.dates))
	copy(out, l.dates)
	return out
}

// HasUser reports whether user is a registered column.
func (l *Ledger) HasUser(user string) bool {
	for _, u := range l.users {
		if u == user {
			return true
		}
	}
	return false
}

// HasDate reports whether date has a row.
func (l *Ledger) HasDate(date string) bool {
	_, ok := l.cells[date]
	return ok
}

// AddUser registers a new column, back-filled with 0.0 for every existing
// row. Adding an existing user is a no-op.
func (l *Ledger) AddUser(user string) {
	if l.HasUser(user) {
		return
	}
	l.users = append(l.users, user)
	for _, d := range l.dates {
		l.cells[d][user] = 0
	}
}

// RemoveUser drops a column and its cells from every row. Used to roll back
// a registration whose credential write failed.
func (l *Ledger) RemoveUser(user string) {
	for i, u := range l.users {
		if u == user {
			l.users = append(l.users[:i], l.users[i+1:]...)
			break
		}
	}
	for _, d := range l.dates {
		delete(l.cells[d], user)
	}
}

// AddDate inserts an empty row for date with every column back-filled 0.0.
// Inserting an existing date is a no-op.
func (l *Ledger) AddDate(date string) {
	if l.HasDate(date) {
		return
	}
	row := make(map[string]float64, len(l.users))
	for _, u := range l.users {
		row[u] = 0
	}
	l.dates = append(l.dates, date)
	l.cells[date] = row
}

// Set writes a cell, creating the row (with 0.0 back-fill for all other
// columns) if the date is new. The user must already be a column.
func (l *Ledger) Set(date, user string, value float64) {
	l.AddDate(date)
	l.cells[date][user] = value
}

// Cell returns the value at (date, user), or 0 when the row does not exist.
func (l *Ledger) Cell(date, user string) float64 {
	return l.cells[date][user]
}

// Month returns the user's series for the given YYYY-MM month: a mapping
// from every row date carrying that month prefix to the user's cell. A
// month with no rows yields an empty, non-nil map.
func (l *Ledger) Month(user, month string) map[string]float64 {
	out := make(map[string]float64)
	prefix := month + "-"
	for _, d := range l.dates {
		if len(d) >= len(prefix) && d[:len(prefix)] == prefix {
			out[d] = l.cells[d][user]
		}
	}
	return out
}
