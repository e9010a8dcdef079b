package search

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"

	"github.com/jonwraymond/toolcatalog/index"
)

// computeFingerprint generates a stable hash of the document slice.
// The fingerprint changes when any indexed field changes, enabling
// cache lookup of Bleve indexes by document set.
func computeFingerprint(docs []index.SearchDoc) string {
	h := sha256.New()

	for _, doc := range docs {
		h.Write([]byte(doc.ID))
		h.Write([]byte{0}) // separator

		h.Write([]byte(doc.DocText))
		h.Write([]byte{0})

		h.Write([]byte(doc.Summary.ID))
		h.Write([]byte{0})
		h.Write([]byte(doc.Summary.Slug))
		h.Write([]byte{0})
		h.Write([]byte(doc.Summary.CategoryID))
		h.Write([]byte{0})
		h.Write([]byte(doc.Summary.Name))
		h.Write([]byte{0})
		h.Write([]byte(doc.Summary.Description))
		h.Write([]byte{0})

		// Tags sorted for order-independence
		sortedTags := slices.Clone(doc.Summary.Tags)
		slices.Sort(sortedTags)
		h.Write([]byte(strings.Join(sortedTags, "\x01")))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
