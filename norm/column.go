package norm

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/tvolkar/flightslt/models"
)

// ConvertSchemaToTypes maps every column of the schema to the coarse
// category persisted in expectation files. The mapping is total: any
// physical type the engine may start reporting in the future falls
// back to Other instead of failing.
func ConvertSchemaToTypes(schema *arrow.Schema) []models.ColumnType {
	types := make([]models.ColumnType, 0, schema.NumFields())
	for i := 0; i < schema.NumFields(); i++ {
		types = append(types, classify(schema.Field(i).Type))
	}
	return types
}

func classify(dt arrow.DataType) models.ColumnType {
	switch dt.ID() {
	case arrow.BOOL:
		return models.ColumnTypeBoolean
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return models.ColumnTypeInteger
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64,
		arrow.DECIMAL128, arrow.DECIMAL256:
		return models.ColumnTypeFloat
	case arrow.STRING, arrow.LARGE_STRING, arrow.STRING_VIEW:
		return models.ColumnTypeText
	case arrow.DATE32, arrow.DATE64, arrow.TIME32, arrow.TIME64:
		return models.ColumnTypeDateTime
	case arrow.TIMESTAMP:
		return models.ColumnTypeTimestamp
	case arrow.DICTIONARY:
		return classifyDictionary(dt.(*arrow.DictionaryType))
	default:
		return models.ColumnTypeOther
	}
}

// classifyDictionary maps a dictionary column through its value type:
// string dictionaries compare as Text, anything else as Other.
func classifyDictionary(dt *arrow.DictionaryType) models.ColumnType {
	if !arrow.IsInteger(dt.IndexType.ID()) {
		return models.ColumnTypeOther
	}
	switch dt.ValueType.ID() {
	case arrow.STRING, arrow.LARGE_STRING, arrow.STRING_VIEW:
		return models.ColumnTypeText
	default:
		return models.ColumnTypeOther
	}
}
