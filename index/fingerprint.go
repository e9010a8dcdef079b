package index

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/jonwraymond/toolcatalog/catalog"
)

// fingerprint hashes the canonical JSON form of the catalog. Two catalogs
// with the same fingerprint build indexes that answer every query the same
// way.
func fingerprint(cat catalog.Catalog) string {
	h := sha256.New()
	// Encoding catalog records cannot fail: they hold only strings, bools,
	// ints and times.
	_ = json.NewEncoder(h).Encode(cat)
	return hex.EncodeToString(h.Sum(nil))
}
