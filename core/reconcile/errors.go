package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrCollectionFetch matches every CollectionFetchError.
	ErrCollectionFetch = errors.New("collection fetch failed")
	// ErrStatsMissing marks an entity without a statistics entry.
	ErrStatsMissing = errors.New("no statistics entry")
	// ErrNodeUnresolved marks a pool member whose address matches no node.
	ErrNodeUnresolved = errors.New("member address matches no node")
	// ErrMembersUnavailable marks a pool whose member listing could not be fetched.
	ErrMembersUnavailable = errors.New("member listing unavailable")
)

// Collection names used in CollectionFetchError.
const (
	CollectionListing    = "listing"
	CollectionStatistics = "statistics"
)

// CollectionFetchError reports that a whole top-level collection could not
// be retrieved. It is fatal to the run.
type CollectionFetchError struct {
	Class      EntityClass
	Collection string
	Err        error
}

func (e *CollectionFetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s %s: %v", e.Class, e.Collection, e.Err)
}

func (e *CollectionFetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCollectionFetch.
func (e *CollectionFetchError) Is(target error) bool {
	return target == ErrCollectionFetch
}
