package output

import (
	"io"

	"github.com/tvolkar/flightslt/models"
)

type Formatter interface {
	Format(result *models.Result, writer io.Writer) error
	Name() string
}
