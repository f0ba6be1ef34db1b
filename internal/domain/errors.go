package domain

import (
	"errors"
	"fmt"
)

// Dataset-level failures. Row-level problems are recovered locally by
// the validator; these two abort the computation.
var (
	ErrNoDurationColumn = errors.New("None of the recognized duration columns were found in the uploaded data.")
	ErrEmptyDataset     = errors.New("No rows survived validation.")
)

// DatasetError is a fatal computation failure together with the row
// diagnostics gathered before the dataset was abandoned, so the caller
// can report how many rows were rejected and why.
type DatasetError struct {
	Reason       error
	RejectedRows int
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("%v (%d rows rejected)", e.Reason, e.RejectedRows)
}

func (e *DatasetError) Unwrap() error { return e.Reason }
