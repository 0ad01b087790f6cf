package summary

import "github.com/budgetbuddy-dev/budgetbuddy/internal/model"

// Source is anything that can hand out a ledger snapshot together with a
// version that changes whenever the snapshot would.
type Source interface {
	Snapshot() model.Ledger
	Version() uint64
}

// Memo caches the most recent Month and recomputes only when the source
// version or the requested month changes.
type Memo struct {
	src     Source
	valid   bool
	version uint64
	key     model.MonthKey
	month   Month
}

// NewMemo returns a Memo over src.
func NewMemo(src Source) *Memo {
	return &Memo{src: src}
}

// Month returns the derived view of key.
func (m *Memo) Month(key model.MonthKey) Month {
	v := m.src.Version()
	if m.valid && m.version == v && m.key == key {
		return m.month
	}
	m.month = Derive(m.src.Snapshot(), key)
	m.version = v
	m.key = key
	m.valid = true
	return m.month
}
