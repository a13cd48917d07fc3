package id

import (
	"testing"

	"github.com/bmizerany/assert"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

func TestTraceIDFrom(t *testing.T) {
	a := TraceIDFrom("output.follow.11")
	b := TraceIDFrom("output.follow.11")
	c := TraceIDFrom("output.follow.14")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	_, err := uuid.FromString(a)
	require.Nil(t, err)
}

func TestGenTraceID(t *testing.T) {
	a := GenTraceID()
	b := GenTraceID()
	assert.NotEqual(t, a, b)

	_, err := uuid.FromString(a)
	require.Nil(t, err)
}
