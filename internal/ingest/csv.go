// Package ingest reads basket data from external files into the model
// types the miner consumes.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/halcyonforge/lift/internal/model"
)

// ReadBaskets parses basket CSV data: one record per basket, each field
// an item identifier. Rows may have differing field counts. Blank
// fields are skipped, duplicate items within a basket are collapsed,
// and records with no usable items are dropped.
func ReadBaskets(r io.Reader) ([][]model.Item, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var baskets [][]model.Item
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read basket record at line %d: %w", line+1, err)
		}
		line++

		items := make([]model.Item, 0, len(record))
		for _, field := range record {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			items = append(items, model.Item(field))
		}
		if len(items) == 0 {
			continue
		}
		baskets = append(baskets, model.DedupeItems(items))
	}

	return baskets, nil
}

// ReadBasketsFile opens and parses a basket CSV file.
func ReadBasketsFile(path string) ([][]model.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open basket file: %w", err)
	}
	defer func() { _ = f.Close() }()

	baskets, err := ReadBaskets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return baskets, nil
}
