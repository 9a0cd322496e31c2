package format

import (
	"encoding/csv"
	"io"

	"github.com/tvolkar/flightslt/models"
	"github.com/tvolkar/flightslt/output"
)

var _ output.Formatter = (*CSV)(nil)

type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (cf *CSV) Name() string {
	return "csv"
}

func (cf *CSV) Format(result *models.Result, writer io.Writer) error {
	// cells are canonical strings already, so rows pass through as-is
	data := [][]string{result.Header}
	for _, row := range result.Rows {
		data = append(data, row)
	}

	w := csv.NewWriter(writer)
	err := w.WriteAll(data)
	if err != nil {
		return err
	}
	if err := w.Error(); err != nil {
		return err
	}
	return nil
}
