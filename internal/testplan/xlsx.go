package testplan

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/studydesk/go-services/internal/extract"
	"github.com/xuri/excelize/v2"
)

// Columns returns the spreadsheet header: canonical keys present in any task
// first, then every other key in first-occurrence order.
func Columns(tasks []extract.Object) []string {
	seen := map[string]bool{}
	for _, t := range tasks {
		for _, f := range t {
			seen[f.Key] = true
		}
	}
	cols := make([]string, 0, len(seen))
	added := map[string]bool{}
	for _, k := range CanonicalKeys {
		if seen[k] {
			cols = append(cols, k)
			added[k] = true
		}
	}
	for _, t := range tasks {
		for _, f := range t {
			if !added[f.Key] {
				cols = append(cols, f.Key)
				added[f.Key] = true
			}
		}
	}
	return cols
}

// RenderXLSX writes tasks as a single-sheet workbook with one header row and
// one row per task. Missing keys leave the cell empty.
func RenderXLSX(tasks []extract.Object) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	cols := Columns(tasks)
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, fmt.Errorf("write header %q: %w", col, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, bold); err != nil {
			return nil, err
		}
	}

	for r, task := range tasks {
		for i, col := range cols {
			raw, ok := task.Get(col)
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(task, col, raw)); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValue keeps JSON numbers and booleans typed so spreadsheet tools can
// compute with them; everything else is text.
func cellValue(task extract.Object, key string, raw json.RawMessage) interface{} {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err == nil {
		switch x := v.(type) {
		case json.Number:
			if n, err := x.Int64(); err == nil {
				return n
			}
			if f, err := x.Float64(); err == nil {
				return f
			}
		case bool:
			return x
		}
	}
	return task.Text(key)
}
