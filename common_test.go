package pace_test

import (
	"testing"
	"testing/synctest"

	"github.com/teenjuna/pace"
	"github.com/teenjuna/pace/internal/testing/require"
)

func run(t *testing.T, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		t.Helper()
		t.Parallel()
		synctest.Test(t, func(t *testing.T) {
			fn(t)
		})
	})
}

func ints(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func pull[Item any](t *testing.T, it *pace.Iterator[Item]) pace.State {
	t.Helper()
	s, _, ok := it.Next()
	require.Equal(t, ok, true)
	return s
}
