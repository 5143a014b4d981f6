package string_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	s "vetgate/pkg/string"
)

func TestTrimStrings(t *testing.T) {
	a, b, c := "  padded  ", "\tclean\n", "untouched"
	s.TrimStrings(&a, &b, &c)
	require.Equal(t, "padded", a)
	require.Equal(t, "clean", b)
	require.Equal(t, "untouched", c)
}

func TestTrimSlice(t *testing.T) {
	ss := []string{" one ", "two", "  ", ""}
	s.TrimSlice(ss)
	require.Equal(t, []string{"one", "two", "", ""}, ss)
}

func TestTrimSliceNil(t *testing.T) {
	require.NotPanics(t, func() { s.TrimSlice(nil) })
}
