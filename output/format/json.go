package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tvolkar/flightslt/models"
	"github.com/tvolkar/flightslt/output"
)

var _ output.Formatter = (*JSON)(nil)

type JSON struct{}

func NewJSON() *JSON {
	return &JSON{}
}

func (jf *JSON) Name() string {
	return "json"
}

// Format writes the result in the shape expectation tooling consumes:
// the compact tag string for the column types and the canonical rows.
func (jf *JSON) Format(result *models.Result, writer io.Writer) error {
	doc := struct {
		Engine string     `json:"engine,omitempty"`
		Query  string     `json:"query,omitempty"`
		Header []string   `json:"header,omitempty"`
		Types  string     `json:"types"`
		Rows   [][]string `json:"rows"`
	}{
		Engine: result.Meta.Engine,
		Query:  result.Meta.Query,
		Header: result.Header,
		Types:  result.TypeTags(),
		Rows:   make([][]string, 0, len(result.Rows)),
	}
	for _, row := range result.Rows {
		doc.Rows = append(doc.Rows, row)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	_, err = writer.Write(out)
	if err != nil {
		return err
	}
	return nil
}
