// Package state owns a user's in-memory practice campaign. Every method takes the
// store lock, so reconciliation callbacks running on other goroutines can use it
// alongside the request path.
package state

import (
	"sort"
	"sync"

	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/google/uuid"
)

type Store struct {
	mu    sync.Mutex
	state models.State
}

func New(st models.State) *Store {
	s := &Store{}
	s.Replace(st)
	return s
}

// Replace swaps the whole campaign, renumbering the incoming rows.
func (s *Store) Replace(st models.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Clone(st)
	if s.state.Rows == nil {
		s.state.Rows = []models.Row{}
	}
	Renumber(s.state.Rows)
}

// ReplaceRows overwrites the row list and keeps the metadata.
func (s *Store) ReplaceRows(rows []models.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Rows = cloneRows(rows)
	for i := range s.state.Rows {
		if s.state.Rows[i].Key == "" {
			s.state.Rows[i].Key = NewKey()
		}
	}
	Renumber(s.state.Rows)
}

func (s *Store) Snapshot() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Clone(s.state)
}

func (s *Store) Meta() models.Meta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Meta
}

func (s *Store) UpdateMeta(fn func(*models.Meta)) models.Meta {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state.Meta)
	if s.state.Meta.Goal < 0 {
		s.state.Meta.Goal = 0
	}
	return s.state.Meta
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Rows)
}

func (s *Store) Row(key string) (models.Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(key)
	if i < 0 {
		return models.Row{}, false
	}
	return cloneRow(s.state.Rows[i]), true
}

// Append adds a provisional row at the end of the list.
func (s *Store) Append(ko, en string) models.Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := models.Row{
		Key:     NewKey(),
		No:      len(s.state.Rows) + 1,
		Ko:      ko,
		En:      en,
		History: []models.Outcome{},
	}
	s.state.Rows = append(s.state.Rows, row)
	Renumber(s.state.Rows)

	return cloneRow(s.state.Rows[s.index(row.Key)])
}

func (s *Store) Patch(key string, patch models.RowPatch) (models.Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(key)
	if i < 0 {
		return models.Row{}, false
	}
	if patch.Ko != nil {
		s.state.Rows[i].Ko = *patch.Ko
	}
	if patch.En != nil {
		s.state.Rows[i].En = *patch.En
	}
	return cloneRow(s.state.Rows[i]), true
}

// Record appends an outcome, keeping the last MaxHistory entries.
func (s *Store) Record(key string, outcome models.Outcome, today string) (models.Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(key)
	if i < 0 {
		return models.Row{}, false
	}

	row := &s.state.Rows[i]
	row.History = PushOutcome(row.History, outcome)
	row.Count++
	row.ReviewDay = today

	return cloneRow(*row), true
}

// Confirm stores the durable id the remote store assigned.
func (s *Store) Confirm(key, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(key)
	if i < 0 {
		return false
	}
	s.state.Rows[i].ID = id
	return true
}

// Remove deletes a row and renumbers the rest.
func (s *Store) Remove(key string) (models.Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(key)
	if i < 0 {
		return models.Row{}, false
	}
	removed := s.state.Rows[i]
	s.state.Rows = append(s.state.Rows[:i], s.state.Rows[i+1:]...)
	Renumber(s.state.Rows)

	return removed, true
}

// Move places a row at a 1-based position, clamped to the list bounds.
func (s *Store) Move(key string, position int) (models.Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(key)
	if i < 0 {
		return models.Row{}, false
	}

	Renumber(s.state.Rows)
	i = s.index(key)

	row := s.state.Rows[i]
	rest := append(s.state.Rows[:i:i], s.state.Rows[i+1:]...)

	to := position - 1
	if to < 0 {
		to = 0
	}
	if to > len(rest) {
		to = len(rest)
	}

	rows := make([]models.Row, 0, len(rest)+1)
	rows = append(rows, rest[:to]...)
	rows = append(rows, row)
	rows = append(rows, rest[to:]...)
	for n := range rows {
		rows[n].No = n + 1
	}
	s.state.Rows = rows

	return cloneRow(rows[to]), true
}

// Order lists the sequence numbers of confirmed rows for a remote reorder.
func (s *Store) Order() []models.RowOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := make([]models.RowOrder, 0, len(s.state.Rows))
	for _, r := range s.state.Rows {
		if r.Confirmed() {
			order = append(order, models.RowOrder{ID: r.ID, No: r.No})
		}
	}
	return order
}

func (s *Store) index(key string) int {
	for i := range s.state.Rows {
		if s.state.Rows[i].Key == key {
			return i
		}
	}
	return -1
}

// Renumber sorts rows by their current sequence number and rewrites it as 1..N.
func Renumber(rows []models.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].No < rows[j].No
	})
	for i := range rows {
		rows[i].No = i + 1
	}
}

func PushOutcome(history []models.Outcome, outcome models.Outcome) []models.Outcome {
	history = append(history, outcome)
	if len(history) > models.MaxHistory {
		history = history[len(history)-models.MaxHistory:]
	}
	return append([]models.Outcome(nil), history...)
}

func NewKey() string {
	return uuid.NewString()
}

func Clone(st models.State) models.State {
	return models.State{Meta: st.Meta, Rows: cloneRows(st.Rows)}
}

func cloneRows(rows []models.Row) []models.Row {
	out := make([]models.Row, len(rows))
	for i, r := range rows {
		out[i] = cloneRow(r)
	}
	return out
}

func cloneRow(r models.Row) models.Row {
	r.History = append([]models.Outcome{}, r.History...)
	return r
}
