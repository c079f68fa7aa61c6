package models

type Account struct {
	ID    string `db:"id"`
	Email string `db:"email"`
}

// PendingEdit remembers which row field the next chat message should fill.
// FieldNew has no key: the message becomes a new row.
type PendingEdit struct {
	Key   string
	Field string
}

const (
	FieldKo  = "ko"
	FieldEn  = "en"
	FieldNew = "new"
)
