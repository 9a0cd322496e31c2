package models

// ColumnType is the coarse comparison category of a result column.
// Expectation files persist it as a single character.
type ColumnType int

const (
	ColumnTypeOther ColumnType = iota
	ColumnTypeBoolean
	ColumnTypeDateTime
	ColumnTypeInteger
	ColumnTypeFloat
	ColumnTypeText
	ColumnTypeTimestamp
)

func (t ColumnType) String() string {
	switch t {
	case ColumnTypeBoolean:
		return "boolean"
	case ColumnTypeDateTime:
		return "datetime"
	case ColumnTypeInteger:
		return "integer"
	case ColumnTypeFloat:
		return "float"
	case ColumnTypeText:
		return "text"
	case ColumnTypeTimestamp:
		return "timestamp"
	case ColumnTypeOther:
		return "other"
	default:
		return ""
	}
}

// Char returns the single-character tag written to expectation files.
func (t ColumnType) Char() rune {
	switch t {
	case ColumnTypeBoolean:
		return 'B'
	case ColumnTypeDateTime:
		return 'D'
	case ColumnTypeInteger:
		return 'I'
	case ColumnTypeTimestamp:
		return 'P'
	case ColumnTypeFloat:
		return 'R'
	case ColumnTypeText:
		return 'T'
	default:
		return '?'
	}
}

// ColumnTypeFromChar parses the tag character back to its category.
// Unknown characters are accepted as Other rather than rejected, since
// expectation files may carry tags written by other producers.
func ColumnTypeFromChar(c rune) ColumnType {
	switch c {
	case 'B':
		return ColumnTypeBoolean
	case 'D':
		return ColumnTypeDateTime
	case 'I':
		return ColumnTypeInteger
	case 'P':
		return ColumnTypeTimestamp
	case 'R':
		return ColumnTypeFloat
	case 'T':
		return ColumnTypeText
	default:
		return ColumnTypeOther
	}
}
