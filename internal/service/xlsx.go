package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/DanRulev/sentrack.git/internal/state"
	"github.com/xuri/excelize/v2"
)

const (
	sheetPractice = "Practice"
	sheetMeta     = "Meta"
)

var practiceHeader = []interface{}{"No", "Korean", "English", "History", "Count", "ReviewDay", "Key", "ID"}

func encodeXLSX(st models.State) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetPractice)

	if err := f.SetSheetRow(sheetPractice, "A1", &practiceHeader); err != nil {
		return nil, err
	}
	for i, r := range st.Rows {
		history := make([]string, len(r.History))
		for n, h := range r.History {
			history[n] = string(h)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{r.No, r.Ko, r.En, strings.Join(history, " "), r.Count, r.ReviewDay, r.Key, r.ID}
		if err := f.SetSheetRow(sheetPractice, cell, &values); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheetPractice, "B", "C", 40); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetMeta); err != nil {
		return nil, err
	}
	meta := [][]interface{}{
		{"title", st.Meta.Title},
		{"start", st.Meta.Start},
		{"end", st.Meta.End},
		{"goal", st.Meta.Goal},
	}
	for i, kv := range meta {
		if err := f.SetSheetRow(sheetMeta, fmt.Sprintf("A%d", i+1), &kv); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeXLSX rebuilds a state document from the workbook and runs it through the
// same lenient decoding as JSON imports, so missing cells get the same defaults.
func decodeXLSX(data []byte, now time.Time) (models.State, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return models.State{}, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheetPractice)
	if err != nil {
		return models.State{}, err
	}

	doc := map[string]interface{}{}
	docRows := make([]map[string]interface{}, 0, len(rows))
	for i, cells := range rows {
		if i == 0 {
			continue
		}
		get := func(col int) string {
			if col < len(cells) {
				return strings.TrimSpace(cells[col])
			}
			return ""
		}
		if get(1) == "" && get(2) == "" && get(6) == "" {
			continue
		}
		docRows = append(docRows, map[string]interface{}{
			"no":        get(0),
			"ko":        get(1),
			"en":        get(2),
			"history":   strings.Fields(get(3)),
			"count":     get(4),
			"reviewDay": get(5),
			"key":       get(6),
			"id":        get(7),
		})
	}
	doc["rows"] = docRows

	if metaRows, err := f.GetRows(sheetMeta); err == nil {
		meta := map[string]interface{}{}
		for _, kv := range metaRows {
			if len(kv) < 2 {
				continue
			}
			meta[strings.TrimSpace(kv[0])] = kv[1]
		}
		doc["meta"] = meta
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return models.State{}, err
	}
	return state.Decode(raw, now)
}
