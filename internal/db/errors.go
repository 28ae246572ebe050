package db

import "errors"

// Domain-level database error sentinels.
var (
	// Job ad errors
	ErrJobAdMissingTitle = errors.New("job ad has no title")
	ErrNoJobAds          = errors.New("no job ads to import")
)
