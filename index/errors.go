package index

import "errors"

// ErrConfig is returned by Build when the catalog fails validation. The
// individual causes are joined behind it and can be matched with errors.Is
// against the catalog package sentinels.
var ErrConfig = errors.New("invalid catalog configuration")

// ErrLinkPolicy is returned by ParseLinkPolicy for unknown policy names.
var ErrLinkPolicy = errors.New("unknown link policy")
