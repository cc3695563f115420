package literal

import "github.com/pkg/errors"

// Sentinel errors returned by [Parse] and [ParseAll]. Use [errors.Is] for
// comparisons; YAML syntax errors are wrapped as-is and match none of these.
var (
	// ErrEmpty is returned when the input holds no YAML document.
	ErrEmpty = errors.New("literal: empty input")

	// ErrBadCons is returned when the !cons tag is attached to anything other
	// than a sequence of exactly two items.
	ErrBadCons = errors.New("literal: !cons must tag a sequence of exactly two items")

	// ErrBadKey is returned for mapping keys that are not scalars.
	ErrBadKey = errors.New("literal: mapping keys must be scalars")

	// ErrAliasCycle is returned when an alias refers to a node that encloses
	// it, as in "&a [*a]".
	ErrAliasCycle = errors.New("literal: alias refers to an enclosing node")

	// ErrAliasLimit is returned when a document resolves more than
	// [MaxAliasExpansions] aliases.
	ErrAliasLimit = errors.New("literal: too many alias expansions")
)
