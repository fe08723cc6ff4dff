package export

import "errors"

// Sentinel errors returned by the exporter.
var (
	ErrEmptyLedger = errors.New("no events found for this session")
	ErrMalformed   = errors.New("malformed csv export")
)
