package export

import (
	"fmt"

	"github.com/elC0mpa/az-prune/model"
)

type service struct{}

type ExportService interface {
	ExportExcel(rows []model.OrphanedResource, tenantID, destinationPath string) error
	ExportCSV(rows []model.OrphanedResource, tenantID, destinationPath string) error
}

// ExportError indicates the destination was unwritable or the report could
// not be produced. The in-memory result set is unaffected.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s failed: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
