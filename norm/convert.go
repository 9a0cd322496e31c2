package norm

import (
	"github.com/apache/arrow-go/v18/arrow"
	"golang.org/x/sync/errgroup"

	"github.com/tvolkar/flightslt/models"
)

// ConvertBatches converts record batches to the canonical row matrix
// the harness compares against expectation files.
//
// Every batch schema must be contained in the declared schema; a
// mismatch fails the whole resultset. Batches are normalized
// concurrently, with per-batch output slots keeping batch order and
// row order within a batch intact.
func ConvertBatches(schema *arrow.Schema, batches []arrow.Record) ([]models.Row, error) {
	converted := make([][]models.Row, len(batches))

	var group errgroup.Group
	for i, batch := range batches {
		if !schemaContains(schema, batch.Schema()) {
			return nil, &SchemaError{Declared: schema, Got: batch.Schema()}
		}

		group.Go(func() error {
			rows, err := convertBatch(batch)
			if err != nil {
				return err
			}
			converted[i] = rows
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var rows []models.Row
	for _, batchRows := range converted {
		rows = append(rows, batchRows...)
	}
	return rows, nil
}

func convertBatch(batch arrow.Record) ([]models.Row, error) {
	var rows []models.Row
	for row := 0; row < int(batch.NumRows()); row++ {
		cells := make(models.Row, 0, batch.NumCols())
		for _, col := range batch.Columns() {
			cell, err := cellToString(col, row)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
		for expanded := range expandRow(cells) {
			rows = append(rows, expanded)
		}
	}
	return rows, nil
}

// schemaContains reports whether got matches the declared schema field
// by field. The declared schema may be more permissive about
// nullability than a batch actually is.
func schemaContains(declared, got *arrow.Schema) bool {
	if declared.NumFields() != got.NumFields() {
		return false
	}
	for i := 0; i < declared.NumFields(); i++ {
		d, g := declared.Field(i), got.Field(i)
		if d.Name != g.Name || !arrow.TypeEqual(d.Type, g.Type) {
			return false
		}
		if !d.Nullable && g.Nullable {
			return false
		}
	}
	return true
}
