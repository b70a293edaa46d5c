package question

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// excelHeader is the column order written by WriteExcel and accepted by
// the reader (reader matches by header name, not position).
var excelHeader = []string{"id", "title", "description", "difficulty", "estimated_time", "category", "steps"}

// stepsSeparator joins the steps sequence into a single spreadsheet
// cell; the reader splits on it again.
const stepsSeparator = "\n"

type excelSource struct {
	path string
}

// ExcelSource reads records from an .xlsx workbook: one header row, one
// row per record, steps newline-joined in a single cell.
func ExcelSource(path string) Source {
	return excelSource{path: path}
}

func (s excelSource) Name() string { return s.path }

func (s excelSource) Load() ([]Record, error) {
	// Stat first so a missing workbook reports fs.ErrNotExist the same
	// way the other sources do.
	if _, err := os.Stat(s.path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "title", "difficulty"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("sheet %q is missing the %q column", sheet, required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []Record
	for n, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		id, err := strconv.Atoi(cell(row, "id"))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad id %q", n+2, cell(row, "id"))
		}
		difficulty, err := ParseDifficulty(cell(row, "difficulty"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		records = append(records, Record{
			ID:            id,
			Title:         cell(row, "title"),
			Description:   cell(row, "description"),
			Difficulty:    difficulty,
			EstimatedTime: cell(row, "estimated_time"),
			Category:      cell(row, "category"),
			Steps:         splitSteps(cell(row, "steps")),
		})
	}
	return records, nil
}

// WriteExcel saves records to an .xlsx workbook with a header row.
// Plain cell values only; no styling.
func WriteExcel(path string, records []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]any, len(excelHeader))
	for i, name := range excelHeader {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		row := []any{
			r.ID,
			r.Title,
			r.Description,
			string(r.Difficulty),
			r.EstimatedTime,
			r.Category,
			strings.Join(r.Steps, stepsSeparator),
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func splitSteps(cell string) []string {
	if cell == "" {
		return nil
	}
	var steps []string
	for _, line := range strings.Split(cell, stepsSeparator) {
		line = strings.TrimSpace(line)
		if line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
