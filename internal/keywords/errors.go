package keywords

import (
	"errors"
	"fmt"
)

// Artifact validation errors.
var (
	ErrNotMapping        = errors.New("artifact must be a mapping")
	ErrEmptyPattern      = errors.New("pattern is empty")
	ErrInvalidPattern    = errors.New("pattern does not compile")
	ErrDuplicateKeyword  = errors.New("keyword is defined more than once")
	ErrDuplicateMember   = errors.New("keyword belongs to more than one category")
	ErrInvalidCategory   = errors.New("category must list keyword names")
	ErrEmptyArtifact     = errors.New("artifact defines no entries")
	ErrMissingArtifact   = errors.New("artifact file is missing")
	ErrMalformedArtifact = errors.New("artifact is not valid YAML")
)

// ConfigError reports a keyword artifact that cannot be used. It is fatal at
// load time; matching never starts with a broken artifact.
type ConfigError struct {
	Artifact string // file or set name
	Keyword  string // offending keyword or category, if any
	Err      error
}

func (e *ConfigError) Error() string {
	if e.Keyword != "" {
		return fmt.Sprintf("keyword config %s: %q: %v", e.Artifact, e.Keyword, e.Err)
	}
	return fmt.Sprintf("keyword config %s: %v", e.Artifact, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
