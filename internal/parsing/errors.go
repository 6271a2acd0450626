package parsing

import "errors"

// ErrEmptyInput is returned when the supplied résumé text is empty or
// whitespace-only. It is the only failure that leaves the caller without a
// record.
var ErrEmptyInput = errors.New("parsing: input text is empty")

// ErrNoStructure is returned alongside a still-valid record when segmentation
// recognized no section headers and everything landed in the "other" bucket.
// Callers that only care about best-effort output may ignore it.
var ErrNoStructure = errors.New("parsing: no section headers recognized")
