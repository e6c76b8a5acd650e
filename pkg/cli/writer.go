package cli

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/khalid-nowaf/trebuchet/pkg/calibration"
	"github.com/thoas/go-funk"
)

// reportColumns are the fields of a per-line record, in output order.
var reportColumns = []string{"number", "line", "first", "last", "value", "error"}

// Writer stores a calibration report in a directory and returns the file path.
type Writer interface {
	Write(report *calibration.Report, directory string, dropColumns []string) (string, error)
}

// NewWriter returns the writer for a report format: csv, tsv or json.
func NewWriter(format string) Writer {
	switch format {
	case "json":
		return JsonWriter{}
	case "tsv":
		return CsvWriter{isTSV: true}
	case "csv":
		return CsvWriter{}
	}
	return nil
}

func reportFileName(report *calibration.Report, extension string) string {
	return "report_" + report.Mode.String() + extension
}

// keeps the columns that are not dropped
func columns(dropColumns []string) []string {
	kept := []string{}
	for _, column := range reportColumns {
		if !funk.ContainsString(dropColumns, column) {
			kept = append(kept, column)
		}
	}
	return kept
}

func record(result *calibration.LineResult) map[string]string {
	r := map[string]string{
		"number": strconv.Itoa(result.Number),
		"line":   result.Text,
		"first":  "",
		"last":   "",
		"value":  "",
		"error":  "",
	}
	if result.Skipped() {
		r["error"] = result.Err.Error()
	} else {
		r["first"] = strconv.Itoa(result.First)
		r["last"] = strconv.Itoa(result.Last)
		r["value"] = strconv.Itoa(result.Value)
	}
	return r
}

type JsonWriter struct{}

func (w JsonWriter) Write(report *calibration.Report, directory string, dropColumns []string) (string, error) {
	filePath := filepath.Join(directory, reportFileName(report, ".json"))

	file, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	kept := columns(dropColumns)
	records := make([]map[string]string, 0, len(report.Results))
	for _, result := range report.Results {
		full := record(result)
		r := make(map[string]string, len(kept))
		for _, column := range kept {
			r[column] = full[column]
		}
		records = append(records, r)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return "", err
	}
	return filePath, nil
}

type CsvWriter struct {
	isTSV bool
}

// writes the results of a calibration report to a CSV (or TSV) file.
func (w CsvWriter) Write(report *calibration.Report, directory string, dropColumns []string) (string, error) {
	extension := ".csv"
	separator := ','
	if w.isTSV {
		extension = ".tsv"
		separator = '\t'
	}
	filePath := filepath.Join(directory, reportFileName(report, extension))

	file, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = separator

	headers := columns(dropColumns)
	if err := writer.Write(headers); err != nil {
		return "", err
	}

	for _, result := range report.Results {
		full := record(result)
		row := make([]string, 0, len(headers))
		// same order as the headers
		for _, header := range headers {
			row = append(row, full[header])
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	return filePath, writer.Error()
}
