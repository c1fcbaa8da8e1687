package services

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFile = errors.New("only .xlsx and .xls files are accepted")
	ErrEmptySheet      = errors.New("the sheet has no data rows")
)

// Row is one spreadsheet row keyed by its normalized header.
type Row map[string]string

// SupportedSheet reports whether name has a spreadsheet extension.
func SupportedSheet(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

// ParseSheet reads the first sheet of an xlsx or xls workbook. The first row
// is the header; fully blank rows are dropped.
func ParseSheet(name string, r io.ReadSeeker) ([]Row, error) {
	var (
		grid [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		grid, err = readXLSX(r)
	case ".xls":
		grid, err = readXLS(r)
	default:
		return nil, ErrUnsupportedFile
	}
	if err != nil {
		return nil, err
	}
	return toRows(grid), nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "read xlsx rows")
	}
	return rows, nil
}

func readXLS(r io.ReadSeeker) ([][]string, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, errors.Wrap(err, "open xls")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrEmptySheet
	}

	var grid [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func toRows(grid [][]string) []Row {
	if len(grid) == 0 {
		return nil
	}
	header := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		header[i] = normalizeHeader(h)
	}

	var rows []Row
	for _, cells := range grid[1:] {
		row := Row{}
		for i, cell := range cells {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if v := strings.TrimSpace(cell); v != "" {
				row[header[i]] = v
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// headerAliases maps alternative column titles onto school field names.
var headerAliases = map[string]string{
	"tech":             "istech",
	"teacher_room_num": "teachers_room_num",
	"lng":              "lon",
	"구분":               "division",
	"학교급":              "level",
	"학교명":              "name",
	"주소":               "address",
	"학급수":              "total_classes",
	"교무실":              "teachers_room_num",
	"행정실":              "admin_room_num",
	"팀":                "team",
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	if alias, ok := headerAliases[h]; ok {
		return alias
	}
	return h
}
