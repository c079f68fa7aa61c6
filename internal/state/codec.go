package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/google/uuid"
)

const (
	DefaultTitle = "1만 문장으로 원어민 되기"
	DefaultGoal  = 10000
)

var ErrNotObject = errors.New("document is not a JSON object")

// Default is the empty campaign starting and ending today.
func Default(now time.Time) models.State {
	today := now.Format(time.DateOnly)
	return models.State{
		Meta: models.Meta{
			Title: DefaultTitle,
			Start: today,
			End:   today,
			Goal:  DefaultGoal,
		},
		Rows: []models.Row{},
	}
}

func Encode(st models.State) ([]byte, error) {
	if st.Rows == nil {
		st.Rows = []models.Row{}
	}
	return json.MarshalIndent(st, "", "  ")
}

// Decode parses a state document leniently. Anything that is not a JSON object
// fails with ErrNotObject; absent meta fields fall back to Default, malformed rows
// are dropped and the remaining rows are renumbered.
func Decode(data []byte, now time.Time) (models.State, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return models.State{}, ErrNotObject
	}

	var doc struct {
		Meta json.RawMessage   `json:"meta"`
		Rows []json.RawMessage `json:"rows"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		var rowsOnly struct {
			Meta json.RawMessage `json:"meta"`
		}
		if json.Unmarshal(data, &rowsOnly) != nil {
			return models.State{}, err
		}
		doc.Meta = rowsOnly.Meta
		doc.Rows = nil
	}

	def := Default(now)
	st := models.State{
		Meta: decodeMeta(doc.Meta, def.Meta),
		Rows: make([]models.Row, 0, len(doc.Rows)),
	}

	for _, raw := range doc.Rows {
		row, ok := decodeRow(raw)
		if ok {
			st.Rows = append(st.Rows, row)
		}
	}
	Renumber(st.Rows)

	return st, nil
}

type wireMeta struct {
	Title *string  `json:"title"`
	Start *string  `json:"start"`
	End   *string  `json:"end"`
	Goal  *flexInt `json:"goal"`
}

func decodeMeta(raw json.RawMessage, def models.Meta) models.Meta {
	var w wireMeta
	if len(raw) == 0 || json.Unmarshal(raw, &w) != nil {
		return def
	}

	meta := def
	if w.Title != nil {
		meta.Title = *w.Title
	}
	if w.Start != nil {
		meta.Start = *w.Start
	}
	if w.End != nil {
		meta.End = *w.End
	}
	if w.Goal != nil {
		meta.Goal = int(*w.Goal)
		if meta.Goal < 0 {
			meta.Goal = 0
		}
	}
	return meta
}

type wireRow struct {
	Key       string   `json:"key"`
	ID        flexID   `json:"id"`
	No        flexInt  `json:"no"`
	Ko        string   `json:"ko"`
	En        string   `json:"en"`
	History   []string `json:"history"`
	Count     flexInt  `json:"count"`
	ReviewDay string   `json:"reviewDay"`
}

func decodeRow(raw json.RawMessage) (models.Row, bool) {
	var w wireRow
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Row{}, false
	}

	row := models.Row{
		Key:       w.Key,
		No:        int(w.No),
		Ko:        w.Ko,
		En:        w.En,
		History:   []models.Outcome{},
		Count:     int(w.Count),
		ReviewDay: w.ReviewDay,
	}
	if row.Key == "" {
		row.Key = NewKey()
	}
	// Only remote-assigned ids survive; numeric placeholders stay provisional.
	if _, err := uuid.Parse(string(w.ID)); err == nil {
		row.ID = string(w.ID)
	}
	for _, h := range w.History {
		if o := models.Outcome(h); o.Valid() {
			row.History = PushOutcome(row.History, o)
		}
	}
	if row.Count < 0 {
		row.Count = 0
	}
	return row, true
}

// flexInt accepts a JSON number or numeric string, flooring fractions.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*f = 0
		return nil
	}
	*f = flexInt(math.Floor(v))
	return nil
}

// flexID accepts string or numeric ids.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	*f = flexID(strings.TrimSpace(string(b)))
	return nil
}
