package itertools

import (
	"errors"
	"iter"
)

const routeCardinalityMismatchMessageConstant = "processed sequence did not yield a matching item for a stored route entry"

// ErrRouteCardinalityMismatch is reported by RouteIn when the processed
// sequence yields fewer or more items than the store expects.
var ErrRouteCardinalityMismatch = errors.New(routeCardinalityMismatchMessageConstant)

type routeEntry[P any, S any] struct {
	processed bool
	stored    S
}

// RouteStore carries side-band data from RouteOut to the matching RouteIn.
// Entries are appended by RouteOut in input order and consumed by RouteIn
// front to back. A store must pair exactly one RouteOut with one RouteIn.
type RouteStore[P any, S any] struct {
	entries []routeEntry[P, S]
}

// NewRouteStore returns an empty store for one RouteOut/RouteIn pair.
func NewRouteStore[P any, S any]() *RouteStore[P, S] {
	return &RouteStore[P, S]{}
}

// RouteOut splits each input item into a payload for the downstream
// processing stage and side-band data held in the store. The splitter
// additionally decides whether the payload is forwarded at all: items with
// process reported false are recorded in the store but never yielded, which
// routes them around the processing stage entirely. RouteIn later restores
// the original cardinality and order.
func RouteOut[T any, P any, S any](source iter.Seq[T], store *RouteStore[P, S], splitter func(T) (payload P, stored S, process bool)) iter.Seq[P] {
	return func(yield func(P) bool) {
		for item := range source {
			payload, stored, process := splitter(item)
			store.entries = append(store.entries, routeEntry[P, S]{processed: process, stored: stored})
			if process && !yield(payload) {
				return
			}
		}
	}
}

// RouteIn merges the processed sequence with the side-band data recorded by
// the matching RouteOut. Items are yielded in the original input order of
// RouteOut, including items that bypassed processing; for those the joiner
// receives the zero payload and processed false. A cardinality mismatch
// between the processed sequence and the store surfaces as
// ErrRouteCardinalityMismatch.
func RouteIn[P any, S any, R any](source iter.Seq[P], store *RouteStore[P, S], joiner func(payload P, stored S, processed bool) R) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		var zeroPayload P
		var zeroResult R
		for element := range source {
			for {
				if len(store.entries) == 0 {
					yield(zeroResult, ErrRouteCardinalityMismatch)
					return
				}
				frontEntry := store.entries[0]
				store.entries = store.entries[1:]
				if frontEntry.processed {
					if !yield(joiner(element, frontEntry.stored, true), nil) {
						return
					}
					break
				}
				if !yield(joiner(zeroPayload, frontEntry.stored, false), nil) {
					return
				}
			}
		}
		for _, remainingEntry := range store.entries {
			if remainingEntry.processed {
				yield(zeroResult, ErrRouteCardinalityMismatch)
				return
			}
			if !yield(joiner(zeroPayload, remainingEntry.stored, false), nil) {
				return
			}
		}
		store.entries = nil
	}
}
