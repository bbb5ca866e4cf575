package explorer

import (
	"errors"
	"fmt"
)

// LoadError reports a workbook that could not be turned into a Table:
// missing Summary sheet, missing required columns, or unparsable cells.
// No partial table survives a LoadError.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load: %s: %v", e.Reason, e.Err)
	}
	return "load: " + e.Reason
}

func (e *LoadError) Unwrap() error { return e.Err }

// ErrEmptyTable is returned by range computations over a table with no rows.
var ErrEmptyTable = errors.New("table has no rows")

// ErrEmptySubset is returned by the closest-scenario lookup when the filtered
// subset is empty. With controls seeded from the loaded table this should not
// happen, but an empty subset must not crash the dashboard.
var ErrEmptySubset = errors.New("subset has no rows")
