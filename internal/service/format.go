package service

import (
	"strings"

	"github.com/DanRulev/sentrack.git/internal/models"
)

// HistoryText renders outcome marks oldest first, or "-" when empty.
func HistoryText(history []models.Outcome) string {
	if len(history) == 0 {
		return "-"
	}
	marks := make([]string, len(history))
	for i, h := range history {
		marks[i] = h.Symbol()
	}
	return strings.Join(marks, " ")
}
