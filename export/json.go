package export

import (
	"encoding/json"
	"fmt"

	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/model"
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/overlay"
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/tables"
)

// documentJSON mirrors the assembled document as plain data.
type documentJSON struct {
	Pages []pageJSON `json:"pages"`
}

type pageJSON struct {
	Number int         `json:"number"`
	Lines  []string    `json:"lines"`
	Tables []tableJSON `json:"tables"`
}

type tableJSON struct {
	Headers []string            `json:"headers"`
	Rows    []map[string]string `json:"rows"`
}

// DocumentJSON renders the assembled document as indented JSON: page
// numbers, rendered line texts, and per table the header names plus one
// header-to-cell map per row. Map keys marshal sorted, so output is stable
// across runs.
func DocumentJSON(doc *model.Document, withLabel bool) (string, error) {
	ov := overlay.New()

	out := documentJSON{Pages: make([]pageJSON, 0, len(doc.Pages))}
	for _, page := range doc.Pages {
		pj := pageJSON{
			Number: page.Number,
			Lines:  make([]string, 0, len(page.Lines)),
			Tables: make([]tableJSON, 0, len(page.Tables)),
		}
		for _, line := range page.Lines {
			pj.Lines = append(pj.Lines, ov.RenderLine(line, withLabel))
		}
		for _, t := range page.Tables {
			pj.Tables = append(pj.Tables, tableJSON{
				Headers: t.HeaderNames,
				Rows:    tables.RowMaps(t, withLabel),
			})
		}
		out.Pages = append(out.Pages, pj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}
	return string(data), nil
}
