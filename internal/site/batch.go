package site

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gowind/internal/util"
)

// BatchColumns is the header expected in a site batch file.
var BatchColumns = []string{"name", "region", "terrain", "height", "design_life", "importance_level", "orientation"}

// BatchRow is one site of a batch file. Err is set when the row could not
// be read; the remaining rows are still returned.
type BatchRow struct {
	Line int
	Site *Site
	Err  error
}

// LoadBatch reads a CSV or XLSX file with a header row followed by one site
// per row. Columns are matched by header name, so their order is free.
func LoadBatch(path string) ([]BatchRow, error) {
	var records [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		records, err = util.ReadXLSXFile(path)
	default:
		records, err = util.ReadCSVFile(path)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty batch file", path)
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range BatchColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, col)
		}
	}

	rows := make([]BatchRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if blank(rec) {
			continue
		}
		s, err := parseBatchRecord(rec, index)
		if err == nil {
			err = s.Validate()
		}
		if err != nil {
			rows = append(rows, BatchRow{Line: line, Err: fmt.Errorf("line %d: %w", line, err)})
			continue
		}
		rows = append(rows, BatchRow{Line: line, Site: s})
	}
	return rows, nil
}

func parseBatchRecord(rec []string, index map[string]int) (*Site, error) {
	field := func(col string) string {
		i := index[col]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	number := func(col string) (float64, error) {
		v, ok := util.StrToFloat(field(col)).(float64)
		if !ok {
			return 0, fmt.Errorf("%s %q is not a number", col, field(col))
		}
		return v, nil
	}

	s := &Site{
		Name:            field("name"),
		Region:          field("region"),
		TerrainCategory: field("terrain"),
		DesignLife:      field("design_life"),
	}

	il, ok := util.StrToInt(field("importance_level")).(int)
	if !ok {
		return nil, fmt.Errorf("importance_level %q is not an integer", field("importance_level"))
	}
	s.ImportanceLevel = il

	var err error
	if s.Height, err = number("height"); err != nil {
		return nil, err
	}
	if s.Orientation, err = number("orientation"); err != nil {
		return nil, err
	}
	return s, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
