package norm

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// SchemaError reports a batch whose schema is not contained in the
// schema the query execution declared. It is fatal for the whole
// resultset; no partial matrix is ever returned alongside it.
type SchemaError struct {
	Declared *arrow.Schema
	Got      *arrow.Schema
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema mismatch. Previously had:\n%v\n\nGot:\n%v", e.Declared, e.Got)
}

// EncodingError reports a column whose physical representation can
// not be rendered as its declared data type.
type EncodingError struct {
	DataType arrow.DataType
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unsupported encoding for %s column: %v", e.DataType, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
