package id

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

func TestGenTraceID(t *testing.T) {
	a, b := GenTraceID(), GenTraceID()

	_, err := uuid.FromString(a)
	require.Nil(t, err)
	require.NotEqual(t, a, b)
}

func TestTraceIDFrom(t *testing.T) {
	a := TraceIDFrom("vote:1:u1")

	_, err := uuid.FromString(a)
	require.Nil(t, err)

	require.Equal(t, a, TraceIDFrom("vote:1:u1"))
	require.NotEqual(t, a, TraceIDFrom("vote:1:u2"))
}

func TestModify(t *testing.T) {
	trace := GenTraceID()

	require.Equal(t, Modify(trace, "seize"), Modify(trace, "seize"))
	require.NotEqual(t, Modify(trace, "seize"), Modify(trace, "yield"))
	require.NotEqual(t, trace, Modify(trace, "seize"))

	// malformed parent falls back to the digest path
	require.Equal(t, TraceIDFrom("not-a-uuid"+"seize"), Modify("not-a-uuid", "seize"))
}
