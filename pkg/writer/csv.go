package writer

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/KissOfTheVoid/parse-joinrpg/pkg/flatten"
	"github.com/KissOfTheVoid/parse-joinrpg/pkg/logger"

	"go.uber.org/zap"
)

// TableWriter defines the interface for persisting a flattened table
type TableWriter interface {
	// Write serializes the table. The caller guarantees the table is non-empty.
	Write(table *flatten.Table) error
}

// CSVWriter implements TableWriter by writing a UTF-8 CSV file with a header row
type CSVWriter struct {
	path   string
	logger *logger.Logger
}

// NewCSVWriter creates a new CSVWriter instance
func NewCSVWriter(path string, l *logger.Logger) *CSVWriter {
	return &CSVWriter{path: path, logger: l}
}

// Write creates or truncates the target file and writes header plus one row
// per record
func (w *CSVWriter) Write(table *flatten.Table) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(table.Columns))
	for i := range table.Rows {
		for j, col := range table.Columns {
			row[j] = table.Cell(i, col)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	w.logger.Info("data written",
		zap.String("path", w.path),
		zap.Int("rows", len(table.Rows)),
		zap.Int("columns", len(table.Columns)))
	return nil
}
