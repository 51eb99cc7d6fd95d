package itertools_test

import (
	"iter"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datalad/datasalad/internal/itertools"
)

func valueSequence[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range values {
			if !yield(value) {
				return
			}
		}
	}
}

func TestRouteOutRouteInRestoresOrderAndCardinality(testInstance *testing.T) {
	divisors := []float64{0, 1, 0, 2, 0, 3, 0, 4}
	store := itertools.NewRouteStore[float64, float64]()

	routed := itertools.RouteOut(valueSequence(divisors...), store, func(divisor float64) (float64, float64, bool) {
		return divisor, divisor, divisor != 0
	})

	divided := func(yield func(float64) bool) {
		for divisor := range routed {
			if !yield(2.0 / divisor) {
				return
			}
		}
	}

	var results []float64
	for result, routeError := range itertools.RouteIn(iter.Seq[float64](divided), store, func(quotient float64, _ float64, processed bool) float64 {
		if !processed {
			return math.NaN()
		}
		return quotient
	}) {
		require.NoError(testInstance, routeError)
		results = append(results, result)
	}

	require.Len(testInstance, results, len(divisors))
	for resultIndex, divisor := range divisors {
		if divisor == 0 {
			require.True(testInstance, math.IsNaN(results[resultIndex]))
		} else {
			require.Equal(testInstance, 2.0/divisor, results[resultIndex])
		}
	}
}

func TestRouteInYieldsTrailingStoredOnlyEntries(testInstance *testing.T) {
	store := itertools.NewRouteStore[string, string]()
	routed := itertools.RouteOut(valueSequence("keep", "skip", "skip"), store, func(item string) (string, string, bool) {
		return item, item, item == "keep"
	})

	var processedItems []string
	for item := range routed {
		processedItems = append(processedItems, item)
	}
	require.Equal(testInstance, []string{"keep"}, processedItems)

	var joinedItems []string
	for joined, routeError := range itertools.RouteIn(valueSequence(processedItems...), store, func(payload string, stored string, processed bool) string {
		if processed {
			return payload
		}
		return "stored:" + stored
	}) {
		require.NoError(testInstance, routeError)
		joinedItems = append(joinedItems, joined)
	}
	require.Equal(testInstance, []string{"keep", "stored:skip", "stored:skip"}, joinedItems)
}

func TestRouteInReportsCardinalityMismatch(testInstance *testing.T) {
	store := itertools.NewRouteStore[int, int]()
	routed := itertools.RouteOut(valueSequence(1, 2), store, func(value int) (int, int, bool) {
		return value, value, true
	})
	for range routed {
	}

	extraInput := valueSequence(1, 2, 3)
	var lastError error
	for _, routeError := range itertools.RouteIn(extraInput, store, func(payload int, _ int, _ bool) int {
		return payload
	}) {
		lastError = routeError
	}
	require.ErrorIs(testInstance, lastError, itertools.ErrRouteCardinalityMismatch)
}

func TestRouteInReportsUnmatchedProcessedEntries(testInstance *testing.T) {
	store := itertools.NewRouteStore[int, int]()
	routed := itertools.RouteOut(valueSequence(1, 2), store, func(value int) (int, int, bool) {
		return value, value, true
	})
	for range routed {
	}

	shortInput := valueSequence(1)
	var lastError error
	for _, routeError := range itertools.RouteIn(shortInput, store, func(payload int, _ int, _ bool) int {
		return payload
	}) {
		lastError = routeError
	}
	require.ErrorIs(testInstance, lastError, itertools.ErrRouteCardinalityMismatch)
}
