package index

import "fmt"

// LinkPolicy decides whether direct links reach disabled tools.
type LinkPolicy string

const (
	// LinkEnabledOnly hides disabled tools from direct links as well as
	// listings. It is the zero-value behavior.
	LinkEnabledOnly LinkPolicy = "enabled-only"

	// LinkKeepAlive keeps direct links to disabled tools resolvable while
	// still hiding them from listings and search.
	LinkKeepAlive LinkPolicy = "keep-alive"
)

// ParseLinkPolicy maps a configuration value to a LinkPolicy. The empty
// string selects LinkEnabledOnly.
func ParseLinkPolicy(s string) (LinkPolicy, error) {
	switch LinkPolicy(s) {
	case "", LinkEnabledOnly:
		return LinkEnabledOnly, nil
	case LinkKeepAlive:
		return LinkKeepAlive, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrLinkPolicy, s)
	}
}
