package norm

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"

	"github.com/tvolkar/flightslt/models"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		dataType arrow.DataType
		expected models.ColumnType
	}{
		{arrow.FixedWidthTypes.Boolean, models.ColumnTypeBoolean},

		{arrow.PrimitiveTypes.Int8, models.ColumnTypeInteger},
		{arrow.PrimitiveTypes.Int16, models.ColumnTypeInteger},
		{arrow.PrimitiveTypes.Int32, models.ColumnTypeInteger},
		{arrow.PrimitiveTypes.Int64, models.ColumnTypeInteger},
		{arrow.PrimitiveTypes.Uint8, models.ColumnTypeInteger},
		{arrow.PrimitiveTypes.Uint16, models.ColumnTypeInteger},
		{arrow.PrimitiveTypes.Uint32, models.ColumnTypeInteger},
		{arrow.PrimitiveTypes.Uint64, models.ColumnTypeInteger},

		{arrow.FixedWidthTypes.Float16, models.ColumnTypeFloat},
		{arrow.PrimitiveTypes.Float32, models.ColumnTypeFloat},
		{arrow.PrimitiveTypes.Float64, models.ColumnTypeFloat},
		{&arrow.Decimal128Type{Precision: 38, Scale: 2}, models.ColumnTypeFloat},
		{&arrow.Decimal256Type{Precision: 76, Scale: 10}, models.ColumnTypeFloat},

		{arrow.BinaryTypes.String, models.ColumnTypeText},
		{arrow.BinaryTypes.LargeString, models.ColumnTypeText},
		{arrow.BinaryTypes.StringView, models.ColumnTypeText},

		{arrow.FixedWidthTypes.Date32, models.ColumnTypeDateTime},
		{arrow.FixedWidthTypes.Date64, models.ColumnTypeDateTime},
		{arrow.FixedWidthTypes.Time32s, models.ColumnTypeDateTime},
		{arrow.FixedWidthTypes.Time32ms, models.ColumnTypeDateTime},
		{arrow.FixedWidthTypes.Time64us, models.ColumnTypeDateTime},
		{arrow.FixedWidthTypes.Time64ns, models.ColumnTypeDateTime},

		{arrow.FixedWidthTypes.Timestamp_s, models.ColumnTypeTimestamp},
		{arrow.FixedWidthTypes.Timestamp_us, models.ColumnTypeTimestamp},

		// string dictionaries over integer keys compare as text
		{&arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.BinaryTypes.String}, models.ColumnTypeText},
		{&arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Uint16, ValueType: arrow.BinaryTypes.LargeString}, models.ColumnTypeText},
		{&arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int8, ValueType: arrow.BinaryTypes.StringView}, models.ColumnTypeText},
		{&arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.PrimitiveTypes.Float64}, models.ColumnTypeOther},

		{arrow.BinaryTypes.Binary, models.ColumnTypeOther},
		{arrow.ListOf(arrow.PrimitiveTypes.Int32), models.ColumnTypeOther},
		{arrow.FixedWidthTypes.Duration_ms, models.ColumnTypeOther},
		{arrow.Null, models.ColumnTypeOther},
	}

	for _, tc := range testCases {
		t.Run(tc.dataType.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, classify(tc.dataType))
		})
	}
}

func TestConvertSchemaToTypes(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "score", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "tags", Type: arrow.ListOf(arrow.BinaryTypes.String), Nullable: true},
	}, nil)

	types := ConvertSchemaToTypes(schema)

	assert.Equal(t, []models.ColumnType{
		models.ColumnTypeInteger,
		models.ColumnTypeText,
		models.ColumnTypeFloat,
		models.ColumnTypeOther,
	}, types)
}
