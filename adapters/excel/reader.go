// Package excel loads tabular data from .xlsx and .csv files into
// dataset.Table values for the descriptive and inferential engines.
package excel

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"statistician/dataset"
	"statistician/internal"
	"statistician/internal/errors"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	log      *internal.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType, log: internal.DefaultLogger}
}

// ReadTable reads the file into a dataset.Table. Cells stay raw strings; the
// normalize package decides downstream what parses as numeric.
func (r *DataReader) ReadTable() (*dataset.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.New(errors.CodeInvalidInput, "data file not found: "+r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVTable()
	case "xlsx":
		return r.readExcelTable()
	default:
		return nil, errors.New(errors.CodeInvalidArgument, "unsupported file type: "+r.fileType)
	}
}

// readExcelTable reads Sheet1 of an Excel workbook
func (r *DataReader) readExcelTable() (*dataset.Table, error) {
	start := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read Sheet1")
	}
	r.log.Debug("Sheet1 read in %.2fms (%d rows)", float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	return r.buildTable(rows)
}

// readCSVTable reads a CSV file with a header row
func (r *DataReader) readCSVTable() (*dataset.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV file")
	}

	return r.buildTable(rows)
}

// buildTable converts raw string rows into a Table. The first row supplies
// column names; short rows are padded with empty cells so row width always
// matches the header.
func (r *DataReader) buildTable(rows [][]string) (*dataset.Table, error) {
	if len(rows) < 2 {
		return nil, errors.New(errors.CodeInsufficientData,
			"data file must have at least a header row and one data row")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([][]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make([]any, len(headers))
		for j := range headers {
			if j < len(row) {
				record[j] = strings.TrimSpace(row[j])
			} else {
				record[j] = ""
			}
		}
		records = append(records, record)
	}

	table, err := dataset.New(headers, records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build table")
	}
	r.log.Info("%s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), table.Len())
	return table, nil
}
