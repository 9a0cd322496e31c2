package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/tvolkar/flightslt/models"
	"github.com/tvolkar/flightslt/norm"
)

// Querier executes a query against a remote engine and returns the
// declared schema along with all result batches. Implementations own
// connection handling, transport errors and retries; the runner only
// normalizes what comes back.
type Querier interface {
	Execute(ctx context.Context, query string) (*arrow.Schema, []arrow.Record, error)
}

// Runner feeds queries to one engine and produces normalized results.
type Runner struct {
	engineName string
	db         Querier
	log        models.Logger
}

func New(engineName string, db Querier, logger models.Logger) *Runner {
	return &Runner{
		engineName: engineName,
		db:         db,
		log:        logger,
	}
}

func (r *Runner) EngineName() string {
	return r.engineName
}

// Run executes a single query and returns its normalized result. A
// query yielding neither columns nor rows marks a completed statement
// rather than a resultset.
func (r *Runner) Run(ctx context.Context, query string) (*models.Result, error) {
	start := time.Now()

	schema, batches, err := r.db.Execute(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db.Execute: %w", err)
	}

	types := norm.ConvertSchemaToTypes(schema)
	rows, err := norm.ConvertBatches(schema, batches)
	if err != nil {
		return nil, err
	}

	meta := models.Meta{
		Engine:    r.engineName,
		Query:     query,
		Timestamp: start,
	}

	if len(types) == 0 && len(rows) == 0 {
		r.log.Debugf("statement complete in %s", time.Since(start))
		return &models.Result{Meta: meta}, nil
	}

	header := make(models.Header, 0, schema.NumFields())
	for i := 0; i < schema.NumFields(); i++ {
		header = append(header, schema.Field(i).Name)
	}

	r.log.Debugf("normalized %d rows in %s", len(rows), time.Since(start))

	return &models.Result{
		Header: header,
		Types:  types,
		Rows:   rows,
		Meta:   meta,
	}, nil
}
