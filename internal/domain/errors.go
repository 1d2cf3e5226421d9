package domain

import "fmt"

// DataShapeError reports an upstream payload that is missing expected
// fields or cannot be decoded. It is never retried; the offending
// payload is kept for logging.
type DataShapeError struct {
	Reason  string
	Payload []byte
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("unexpected upstream data: %s", e.Reason)
}
