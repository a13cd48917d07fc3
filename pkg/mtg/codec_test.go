package mtg

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	var (
		typ  int        = 5
		uid             = newUUID()
		amt  uint64     = 50_000
		data RawMessage = make([]byte, 32)
	)

	_, _ = io.ReadFull(rand.Reader, data)

	body, err := Encode(typ, uid, amt, data)
	require.Nil(t, err)

	var (
		dtyp  int
		duid  uuid.UUID
		damt  uint64
		ddata RawMessage
	)

	remain, err := Scan(body, &dtyp)
	require.Nil(t, err)
	assert.Equal(t, typ, dtyp)

	remain, err = Scan(remain, &duid, &damt, &ddata)
	require.Nil(t, err)
	require.Empty(t, remain)

	assert.Equal(t, uid.String(), duid.String())
	assert.Equal(t, amt, damt)
	assert.Equal(t, []byte(data), []byte(ddata))
}

func TestScanPrefix(t *testing.T) {
	body, err := Encode(int(3), uint64(77))
	require.Nil(t, err)

	var typ int
	remain, err := Scan(body, &typ)
	require.Nil(t, err)
	assert.Equal(t, 3, typ)

	var amount uint64
	_, err = Scan(remain, &amount)
	require.Nil(t, err)
	assert.Equal(t, uint64(77), amount)
}

func newUUID() uuid.UUID {
	v, err := uuid.NewV4()
	if err != nil {
		panic(err)
	}

	return v
}
