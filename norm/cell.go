package norm

import (
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// NullStr is the canonical form of any null cell.
const NullStr = "NULL"

// cellToString normalizes the content of a single cell prior to
// comparison, following the semi-standard .slt conventions for NULL
// values and empty strings. Floating numbers are rounded so the
// representation stays consistent across engines.
func cellToString(col arrow.Array, row int) (string, error) {
	if col.IsNull(row) {
		return NullStr, nil
	}

	switch col := col.(type) {
	case *array.Null:
		return NullStr, nil
	case *array.Boolean:
		return strconv.FormatBool(col.Value(row)), nil
	case *array.Int8:
		return strconv.FormatInt(int64(col.Value(row)), 10), nil
	case *array.Int16:
		return strconv.FormatInt(int64(col.Value(row)), 10), nil
	case *array.Int32:
		return strconv.FormatInt(int64(col.Value(row)), 10), nil
	case *array.Int64:
		return strconv.FormatInt(col.Value(row), 10), nil
	case *array.Uint8:
		return strconv.FormatUint(uint64(col.Value(row)), 10), nil
	case *array.Uint16:
		return strconv.FormatUint(uint64(col.Value(row)), 10), nil
	case *array.Uint32:
		return strconv.FormatUint(uint64(col.Value(row)), 10), nil
	case *array.Uint64:
		return strconv.FormatUint(col.Value(row), 10), nil
	case *array.Float16:
		return float16ToString(col.Value(row)), nil
	case *array.Float32:
		return float32ToString(col.Value(row)), nil
	case *array.Float64:
		return float64ToString(col.Value(row)), nil
	case *array.Decimal128:
		// ValueStr renders through the type's declared scale; the
		// rounding pass then makes it comparable to plain floats
		s, err := decimalToString(col.ValueStr(row))
		if err != nil {
			return "", &EncodingError{DataType: col.DataType(), Err: err}
		}
		return s, nil
	case *array.Decimal256:
		s, err := decimalToString(col.ValueStr(row))
		if err != nil {
			return "", &EncodingError{DataType: col.DataType(), Err: err}
		}
		return s, nil
	case *array.String:
		return varcharToString(col.Value(row)), nil
	case *array.LargeString:
		return varcharToString(col.Value(row)), nil
	case *array.StringView:
		return varcharToString(col.Value(row)), nil
	case *array.Dictionary:
		// the outer null marker was honored above; resolve the key and
		// normalize the dictionary value it points at
		return cellToString(col.Dictionary(), col.GetValueIndex(row))
	default:
		return col.ValueStr(row), nil
	}
}

// varcharToString distinguishes empty strings from NULL, strips
// trailing newlines and escapes NUL bytes so text-based viewers render
// the cell instead of truncating it.
func varcharToString(value string) string {
	if value == "" {
		return "(empty)"
	}
	return strings.ReplaceAll(strings.TrimRight(value, "\n"), "\x00", `\0`)
}
