// Package importer reads load manifests from CSV and Excel files.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/TetraLog/internal/model"
)

// DefaultDestination is used for rows without a destination cell.
const DefaultDestination = "Ankara"

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Lines    []model.ManifestLine
	Errors   []string
	Warnings []string
}

// Units returns the number of boxes requested by the imported lines.
func (r ImportResult) Units() int {
	n := 0
	for _, l := range r.Lines {
		n += l.Quantity
	}
	return n
}

// ColumnMapping maps semantic column roles to their indices in the data.
// Unmapped roles are -1.
type ColumnMapping struct {
	Label       int
	Width       int
	Depth       int
	Height      int
	Weight      int
	Quantity    int
	Destination int
	Fragile     int
	Rotate      int
}

func emptyMapping() ColumnMapping {
	return ColumnMapping{
		Label: -1, Width: -1, Depth: -1, Height: -1, Weight: -1,
		Quantity: -1, Destination: -1, Fragile: -1, Rotate: -1,
	}
}

// positionalMapping follows the column order of the manifest template
// without its label column.
var positionalMapping = ColumnMapping{
	Label: -1, Width: 0, Depth: 1, Height: 2, Weight: 3,
	Quantity: 4, Destination: 5, Fragile: 6, Rotate: 7,
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":       {"label", "name", "item", "description", "desc", "box", "sku", "reference"},
	"width":       {"width", "w", "x"},
	"depth":       {"length", "len", "l", "depth", "d", "y"},
	"height":      {"height", "h", "z"},
	"weight":      {"weight", "kg", "mass", "wt", "weight (kg)"},
	"quantity":    {"quantity", "qty", "count", "num", "amount", "pcs", "pieces", "units"},
	"destination": {"destination", "dest", "stop", "city", "drop"},
	"fragile":     {"fragile", "is fragile", "breakable"},
	"rotate":      {"rotate", "can rotate", "can_rotate", "rotatable", "can rotate?"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Matching is case-insensitive against the known aliases of each role.
// Returns the mapping and true if a header was detected, or the positional
// template mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := emptyMapping()

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				setColumn(&mapping, role, i)
			}
		}
	}

	if !isHeader {
		return positionalMapping, false
	}
	return mapping, true
}

// setColumn records idx for role unless an earlier column already claimed it.
func setColumn(m *ColumnMapping, role string, idx int) {
	var target *int
	switch role {
	case "label":
		target = &m.Label
	case "width":
		target = &m.Width
	case "depth":
		target = &m.Depth
	case "height":
		target = &m.Height
	case "weight":
		target = &m.Weight
	case "quantity":
		target = &m.Quantity
	case "destination":
		target = &m.Destination
	case "fragile":
		target = &m.Fragile
	case "rotate":
		target = &m.Rotate
	default:
		return
	}
	if *target == -1 {
		*target = idx
	}
}

// parseFlag converts a yes/no cell to a bool. It returns the value and
// whether the string was recognized.
func parseFlag(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "t", "1", "x", "evet":
		return true, true
	case "no", "n", "false", "f", "0", "-", "hayir", "hayır":
		return false, true
	default:
		return false, false
	}
}

// parseCount parses a whole number, accepting spreadsheet renderings such as "10.0".
func parseCount(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	return int(f), nil
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// rowParser turns rows into manifest lines for one import.
type rowParser struct {
	mapping ColumnMapping
	cfg     model.AppConfig
}

// requiredNumber reads a mandatory numeric column.
func requiredNumber(row []string, idx int, name, rowLabel string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, strings.ToLower(name))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, strings.ToLower(name), s)
	}
	return v, ""
}

// parse extracts a manifest line from a row. It returns the line, any error
// message, and any warning messages.
func (p rowParser) parse(row []string, rowLabel string, lineCount int) (model.ManifestLine, string, []string) {
	width, errMsg := requiredNumber(row, p.mapping.Width, "Width", rowLabel)
	if errMsg != "" {
		return model.ManifestLine{}, errMsg, nil
	}
	depth, errMsg := requiredNumber(row, p.mapping.Depth, "Length", rowLabel)
	if errMsg != "" {
		return model.ManifestLine{}, errMsg, nil
	}
	height, errMsg := requiredNumber(row, p.mapping.Height, "Height", rowLabel)
	if errMsg != "" {
		return model.ManifestLine{}, errMsg, nil
	}
	weight, errMsg := requiredNumber(row, p.mapping.Weight, "Weight", rowLabel)
	if errMsg != "" {
		return model.ManifestLine{}, errMsg, nil
	}

	qtyStr := getCell(row, p.mapping.Quantity)
	if qtyStr == "" {
		return model.ManifestLine{}, fmt.Sprintf("%s: Missing quantity value", rowLabel), nil
	}
	qty, err := parseCount(qtyStr)
	if err != nil {
		return model.ManifestLine{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), nil
	}

	if width <= 0 || depth <= 0 || height <= 0 || qty <= 0 {
		return model.ManifestLine{}, fmt.Sprintf("%s: Width, length, height, and quantity must be positive", rowLabel), nil
	}
	if weight < 0 {
		return model.ManifestLine{}, fmt.Sprintf("%s: Weight cannot be negative", rowLabel), nil
	}

	label := getCell(row, p.mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Line %d", lineCount+1)
	}

	line := model.NewManifestLine(label, width, depth, height, weight, qty)

	var warnings []string
	line.Destination = getCell(row, p.mapping.Destination)
	if line.Destination == "" {
		line.Destination = DefaultDestination
	}
	if !p.cfg.ApplyToLine(&line) {
		warnings = append(warnings, fmt.Sprintf("%s: Unknown destination '%s', assigned to stop %d", rowLabel, line.Destination, line.StopOrder))
	}

	if s := getCell(row, p.mapping.Fragile); s != "" {
		if v, ok := parseFlag(s); ok {
			line.Fragile = v
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown fragile flag '%s', defaulting to No", rowLabel, s))
		}
	}
	if s := getCell(row, p.mapping.Rotate); s != "" {
		if v, ok := parseFlag(s); ok {
			line.CanRotate = v
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown rotate flag '%s', defaulting to Yes", rowLabel, s))
		}
	}

	return line, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportFile imports a manifest, choosing the reader by file extension.
// Legacy .xls workbooks are not readable and yield a single error.
func ImportFile(path string, cfg model.AppConfig) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ImportExcel(path, cfg)
	case ".xls":
		return ImportResult{Errors: []string{
			fmt.Sprintf("Cannot open %s: legacy .xls workbooks are not supported, save it as .xlsx", filepath.Base(path)),
		}}
	default:
		return ImportCSV(path, cfg)
	}
}

// ImportCSV imports a manifest from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string, cfg model.AppConfig) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings, cfg)
}

// ImportCSVFromReader imports a manifest from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune, cfg model.AppConfig) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil, cfg)
}

// ImportExcel imports a manifest from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string, cfg model.AppConfig) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil, cfg)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into manifest lines.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string, cfg model.AppConfig) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Depth == -1 {
			missing = append(missing, "Length")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Weight == -1 {
			missing = append(missing, "Weight")
		}
		if mapping.Quantity == -1 {
			missing = append(missing, "Qty")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if _, err := strconv.ParseFloat(getCell(rows[0], 0), 64); err != nil {
		// Unrecognized header over positional data.
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	}

	parser := rowParser{mapping: mapping, cfg: cfg}
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		line, errMsg, warnings := parser.parse(row, rowLabel, len(result.Lines))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Lines = append(result.Lines, line)
	}

	return result
}
