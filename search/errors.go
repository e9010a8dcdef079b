package search

import "errors"

// ErrClosed is returned by searches on a closed BM25Searcher.
var ErrClosed = errors.New("searcher closed")
