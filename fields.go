package pdfparse

import (
	"encoding/json"
	"fmt"

	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/model"
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/validate"
)

// FieldsOnly scans the widgets of every page and returns a flat name to
// value map of filled Text fields. No lines or tables are built; this is
// the fast path when only field values are needed.
func FieldsOnly(pages []model.ScrapedPage) map[string]string {
	fields := make(map[string]string)
	for _, sp := range pages {
		for _, w := range sp.Widgets {
			if w.FieldType() == model.FieldTypeText && w.FieldValue() != "" {
				fields[w.FieldName()] = w.FieldValue()
			}
		}
	}
	return fields
}

// FieldsJSON returns the FieldsOnly map encoded as a compact JSON object.
//
// Example:
//
//	js, err := pdfparse.FieldsJSON(pages)
func FieldsJSON(pages []model.ScrapedPage) (string, error) {
	data, err := json.Marshal(FieldsOnly(pages))
	if err != nil {
		return "", fmt.Errorf("encoding fields: %w", err)
	}
	return string(data), nil
}

// CheckFields runs a full parse and validates the collected field values
// against the stock length limits. The returned map holds one entry per
// offending field, name to error code; validate.Explain turns a code into
// a human-readable description.
//
// Example:
//
//	problems, _, err := pdfparse.CheckFields(pages)
//	for name, code := range problems {
//	    fmt.Println(name+":", validate.Explain(code))
//	}
func CheckFields(pages []model.ScrapedPage) (map[string]string, []Warning, error) {
	fv, warnings, err := FromPages(pages).Fields()
	if err != nil {
		return nil, warnings, err
	}
	return validate.NewLengths().Check(fv.Text, fv.Table), warnings, nil
}
