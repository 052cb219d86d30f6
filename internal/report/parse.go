package report

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AbhiSharma69/revenue-rescue/internal/sanitize"
)

var (
	// ErrMalformed means no parseable JSON object was found in the model text.
	ErrMalformed = errors.New("report response is not parseable JSON")
	// ErrInvalid means JSON parsed but required sections are missing or wrong.
	ErrInvalid = errors.New("report is missing required sections")
)

// Parse turns raw model output into a validated BusinessReport. The text is
// run through the denylist filter first, then the first top-level JSON object
// is extracted (the model may wrap it in prose or code fences) and checked
// against the schema. There is no partial recovery: any failure discards the
// whole payload and the caller substitutes Fallback.
func Parse(raw string) (*BusinessReport, error) {
	cleaned := sanitize.Clean(raw)

	obj, ok := sanitize.ExtractJSONObject(cleaned)
	if !ok {
		return nil, ErrMalformed
	}

	if err := Validate([]byte(obj)); err != nil {
		if errors.Is(err, ErrInvalid) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var rep BusinessReport
	if err := json.Unmarshal([]byte(obj), &rep); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &rep, nil
}
