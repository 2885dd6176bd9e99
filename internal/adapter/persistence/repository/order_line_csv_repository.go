package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"ecommerce_dashboard/internal/domain/entities"
	"ecommerce_dashboard/internal/infrastructure/logger"
	"ecommerce_dashboard/internal/usecase/interfaces"
)

const DefaultDatasetPath = "all_data.csv"

// OrderLineCSVRepository reads the pre-joined transactions export from a CSV file.
//
// File requirements:
//   - first record is the header; columns are looked up by name (case-insensitive)
//   - extra columns are ignored
//   - the lifecycle timestamp columns are optional; empty cells are nulls
type OrderLineCSVRepository struct {
	path string
	log  *logger.Logger
}

var _ interfaces.IOrderLineRepository = (*OrderLineCSVRepository)(nil)

func NewOrderLineCSVRepository(path string, log *logger.Logger) *OrderLineCSVRepository {
	if strings.TrimSpace(path) == "" {
		path = DefaultDatasetPath
	}
	return &OrderLineCSVRepository{path: path, log: log.With("source", "csv", "path", path)}
}

func (r *OrderLineCSVRepository) LoadAll(ctx context.Context) ([]entities.OrderLine, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := ReadOrderLinesCSV(ctx, f)
	if err != nil {
		r.log.Error("dataset ingestion failed", "err", err)
		return nil, err
	}
	r.log.Info("dataset ingested", "rows", len(lines))
	return lines, nil
}

// ReadOrderLinesCSV parses a CSV stream into validated order lines.
func ReadOrderLinesCSV(ctx context.Context, in io.Reader) ([]entities.OrderLine, error) {
	reader := csv.NewReader(in)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %s", ErrMalformedDataset, col)
		}
	}

	wanted := append(append([]string{}, requiredColumns...), optionalTimestampColumns...)
	out := make([]entities.OrderLine, 0)
	for row := 1; ; row++ {
		if row%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedDataset, row, err)
		}

		raw := make(rawOrderLine, len(wanted))
		for _, col := range wanted {
			if i, ok := index[col]; ok && i < len(record) {
				raw[col] = record[i]
			}
		}
		line, err := toOrderLine(row, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, nil
}
