package converter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/repository"
)

var (
	ErrSheetMissing  = errors.New("sheet missing")
	ErrHeaderMissing = errors.New("header column missing")
	ErrRequiredCell  = errors.New("required value missing")
	ErrDuplicateKey  = errors.New("duplicate key")
)

// repeatedSeparator joins the cells of a repeated column. The validator
// splits list fields on the same separator.
const repeatedSeparator = "\n"

// Converter turns flash cards workbooks into locale documents.
type Converter struct {
	tabs   []Tab
	logger *zap.Logger
}

func New(tabs []Tab, logger *zap.Logger) *Converter {
	return &Converter{tabs: tabs, logger: logger}
}

// Convert reads a workbook and converts every tab.
func (c *Converter) Convert(r io.Reader) (repository.Document, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	return c.ConvertFile(f)
}

func (c *Converter) ConvertFile(f *excelize.File) (repository.Document, error) {
	doc := make(repository.Document, len(c.tabs))

	for _, tab := range c.tabs {
		if idx, _ := f.GetSheetIndex(tab.DisplayName); idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrSheetMissing, tab.DisplayName)
		}

		rows, err := f.GetRows(tab.DisplayName)
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", tab.DisplayName, err)
		}

		set, err := convertTab(tab, rows)
		if err != nil {
			return nil, err
		}
		doc[tab.Name] = set

		c.logger.Info("tab converted",
			zap.String("tab", tab.DisplayName),
			zap.Int("rows", len(set.Rows)),
			zap.Int("entries", len(set.Entries)),
		)
	}

	return doc, nil
}

// WriteDocument writes doc as indented JSON.
func WriteDocument(w io.Writer, doc repository.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// sheetRow is a data row with its 1-based number in the sheet.
type sheetRow struct {
	number int
	cells  []string
}

func convertTab(tab Tab, rows [][]string) (repository.RecordSet, error) {
	var data []sheetRow
	for i, cells := range rows {
		if slices.Contains(tab.ExcludeRows, i+1) {
			continue
		}
		data = append(data, sheetRow{number: i + 1, cells: cells})
	}

	if len(data) == 0 {
		return repository.RecordSet{}, fmt.Errorf("%w: %q has no header row", ErrHeaderMissing, tab.DisplayName)
	}

	header, data := data[0], data[1:]
	columns, err := locateColumns(tab, header.cells)
	if err != nil {
		return repository.RecordSet{}, err
	}

	if tab.Type == TabDictionary {
		return convertDictionary(tab, columns, data)
	}
	return convertArray(tab, columns, data)
}

// locateColumns maps column names to the header cells holding them.
func locateColumns(tab Tab, header []string) (map[string][]int, error) {
	columns := make(map[string][]int, len(tab.Columns))
	for i, cell := range header {
		for _, col := range tab.Columns {
			if strings.EqualFold(strings.TrimSpace(cell), col.DisplayName) {
				if col.Repeated || len(tab.Keys) > 0 || len(columns[col.Name]) == 0 {
					columns[col.Name] = append(columns[col.Name], i)
				}
			}
		}
	}

	for _, col := range tab.Columns {
		if len(columns[col.Name]) == 0 && (col.Required || col.IsKey || tab.Type == TabDictionary) {
			return nil, fmt.Errorf("%w: %q in %q", ErrHeaderMissing, col.DisplayName, tab.DisplayName)
		}
	}
	return columns, nil
}

func convertArray(tab Tab, columns map[string][]int, data []sheetRow) (repository.RecordSet, error) {
	records := make([]map[string]any, 0, len(data))

	for _, row := range data {
		if isBlank(row.cells) {
			continue
		}

		record := make(map[string]any, len(tab.Columns))
		for _, col := range tab.Columns {
			values := cellValues(row.cells, columns[col.Name])
			if !col.Repeated && len(values) > 1 {
				values = values[:1]
			}

			if len(values) == 0 {
				if col.Required {
					return repository.RecordSet{}, fmt.Errorf("%w: %q row %d column %q",
						ErrRequiredCell, tab.DisplayName, row.number, col.DisplayName)
				}
				continue
			}
			record[col.Name] = strings.Join(values, repeatedSeparator)
		}
		records = append(records, record)
	}

	return repository.RecordSet{Rows: records}, nil
}

func convertDictionary(tab Tab, columns map[string][]int, data []sheetRow) (repository.RecordSet, error) {
	var keyCol, valueCol Column
	for _, col := range tab.Columns {
		if col.IsKey {
			keyCol = col
		} else {
			valueCol = col
		}
	}

	values := make(map[string][]string)
	for _, row := range data {
		keys := cellValues(row.cells, columns[keyCol.Name][:1])
		if len(keys) == 0 {
			continue
		}
		name := keyName(tab, keys[0])

		cells := cellValues(row.cells, columns[valueCol.Name])
		repeated := slices.Contains(valueCol.RepeatedKeys, name)
		if _, seen := values[name]; seen && !repeated {
			return repository.RecordSet{}, fmt.Errorf("%w: %q row %d key %q",
				ErrDuplicateKey, tab.DisplayName, row.number, keys[0])
		}
		if !repeated && len(cells) > 1 {
			cells = cells[:1]
		}
		values[name] = append(values[name], cells...)
	}

	for _, required := range valueCol.RequiredKeys {
		if len(values[required]) == 0 {
			return repository.RecordSet{}, fmt.Errorf("%w: %q key %q",
				ErrRequiredCell, tab.DisplayName, required)
		}
	}

	entries := make(map[string]any, len(values))
	for name, v := range values {
		if len(v) == 0 {
			continue
		}
		entries[name] = map[string]any{valueCol.Name: strings.Join(v, repeatedSeparator)}
	}

	return repository.RecordSet{Entries: entries}, nil
}

// keyName resolves a key cell to the key name; unknown keys pass through.
func keyName(tab Tab, cell string) string {
	for _, k := range tab.Keys {
		if strings.EqualFold(cell, k.DisplayName) || strings.EqualFold(cell, k.Name) {
			return k.Name
		}
	}
	return cell
}

func cellValues(cells []string, indexes []int) []string {
	var out []string
	for _, i := range indexes {
		if i >= len(cells) {
			continue
		}
		if v := strings.TrimSpace(cells[i]); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
