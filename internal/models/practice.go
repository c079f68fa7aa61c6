package models

// MaxHistory is how many recent outcomes a row keeps.
const MaxHistory = 5

type Outcome string

const (
	OutcomePass    Outcome = "O"
	OutcomeFail    Outcome = "X"
	OutcomePartial Outcome = "T"
)

func (o Outcome) Valid() bool {
	switch o {
	case OutcomePass, OutcomeFail, OutcomePartial:
		return true
	}
	return false
}

// Symbol is the mark shown in the practice table.
func (o Outcome) Symbol() string {
	switch o {
	case OutcomePass:
		return "ㅇ"
	case OutcomeFail:
		return "x"
	default:
		return "△"
	}
}

type Meta struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	Goal  int    `json:"goal"`
}

// Row is one practice sentence pair. Key is the local handle and never changes;
// ID stays empty until the remote store confirms the row.
type Row struct {
	Key       string    `json:"key"`
	ID        string    `json:"id,omitempty"`
	No        int       `json:"no"`
	Ko        string    `json:"ko"`
	En        string    `json:"en"`
	History   []Outcome `json:"history"`
	Count     int       `json:"count"`
	ReviewDay string    `json:"reviewDay"`
}

func (r Row) Confirmed() bool {
	return r.ID != ""
}

type State struct {
	Meta Meta  `json:"meta"`
	Rows []Row `json:"rows"`
}

// RowPatch carries the text fields a user may edit. Nil fields are left alone.
type RowPatch struct {
	Ko *string
	En *string
}

type RowOrder struct {
	ID string
	No int
}
