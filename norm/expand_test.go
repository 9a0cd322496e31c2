package norm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tvolkar/flightslt/models"
)

func collectRows(seq func(yield func(models.Row) bool)) []models.Row {
	var rows []models.Row
	seq(func(row models.Row) bool {
		rows = append(rows, row)
		return true
	})
	return rows
}

func TestExpandRow_NoNewlines(t *testing.T) {
	row := models.Row{"1", "hello"}

	rows := collectRows(expandRow(row))

	assert.Equal(t, []models.Row{{"1", "hello"}}, rows)
}

func TestExpandRow_MultiLineLastCell(t *testing.T) {
	row := models.Row{"x", "a\n  b"}

	rows := collectRows(expandRow(row))

	assert.Equal(t, []models.Row{
		{"x"},
		{"01)a"},
		{"02)--b"},
	}, rows)
}

func TestExpandRow_SingleCell(t *testing.T) {
	row := models.Row{"logical_plan\nSort: d.b ASC NULLS LAST\n  Projection: d.b"}

	rows := collectRows(expandRow(row))

	assert.Len(t, rows, 4)
	assert.Empty(t, rows[0])
	assert.Equal(t, models.Row{"01)logical_plan"}, rows[1])
	assert.Equal(t, models.Row{"02)Sort: d.b ASC NULLS LAST"}, rows[2])
	assert.Equal(t, models.Row{"03)--Projection: d.b"}, rows[3])
}

func TestExpandRow_TabsCountAsWhitespace(t *testing.T) {
	row := models.Row{"a\n\t\tb"}

	rows := collectRows(expandRow(row))

	assert.Equal(t, models.Row{"02)--b"}, rows[2])
}

func TestExpandRow_OnlyLastCellIsInspected(t *testing.T) {
	row := models.Row{"first\nsecond", "plain"}

	rows := collectRows(expandRow(row))

	assert.Equal(t, []models.Row{{"first\nsecond", "plain"}}, rows)
}

func TestExpandRow_EmptyRow(t *testing.T) {
	rows := collectRows(expandRow(models.Row{}))

	assert.Equal(t, []models.Row{{}}, rows)
}

func TestExpandRow_LineNumbersArePadded(t *testing.T) {
	cell := "l1"
	for i := 2; i <= 11; i++ {
		cell += "\nl"
	}

	rows := collectRows(expandRow(models.Row{cell}))

	assert.Equal(t, models.Row{"01)l1"}, rows[1])
	assert.Equal(t, models.Row{"10)l"}, rows[10])
	assert.Equal(t, models.Row{"11)l"}, rows[11])
}
