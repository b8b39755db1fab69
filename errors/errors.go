package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrEmptyCorpus       = fmt.Errorf("training corpus is empty")
	ErrDimensionMismatch = fmt.Errorf("vector dimension mismatch")
	ErrNotEnoughPoints   = fmt.Errorf("not enough points for the requested cluster count")
	ErrRetriesExhausted  = fmt.Errorf("retries exhausted")
)
