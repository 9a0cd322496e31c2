package format

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tvolkar/flightslt/models"
	"github.com/tvolkar/flightslt/output"
)

var _ output.Formatter = (*Table)(nil)

// Table renders a normalized result as a text table, with the column
// tag characters in an extra row right below the header.
type Table struct{}

func NewTable() *Table {
	return &Table{}
}

func (tf *Table) Name() string {
	return "table"
}

func (tf *Table) Format(result *models.Result, writer io.Writer) error {
	var tableHeaders table.Row
	for _, name := range result.Header {
		tableHeaders = append(tableHeaders, name)
	}

	var tagRow table.Row
	for _, typ := range result.Types {
		tagRow = append(tagRow, string(typ.Char()))
	}

	t := table.NewWriter()
	t.AppendHeader(tableHeaders)
	t.AppendRow(tagRow)
	t.AppendSeparator()
	for _, row := range result.Rows {
		var tableRow table.Row
		for _, cell := range row {
			tableRow = append(tableRow, cell)
		}
		t.AppendRow(tableRow)
	}
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false

	_, err := writer.Write([]byte(t.Render()))
	if err != nil {
		return err
	}
	return nil
}
