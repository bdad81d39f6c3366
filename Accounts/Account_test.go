package Accounts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a, err := New("alice", 1234, true, "GOLD", "OK")
	require.NoError(t, err)
	assert.Equal(t, "alice", a.Username())
	assert.Equal(t, 1234, a.Discriminator())
	assert.True(t, a.HasNitro())
	assert.Equal(t, "GOLD", a.Badge())
	assert.Equal(t, "OK", a.Status())
	assert.Equal(t, "alice#1234", a.Tag())
}

func TestNew_Range(t *testing.T) {
	for _, d := range []int{MinDisc, 1, 42, MaxDisc} {
		_, err := New("x", d, false, "", "")
		assert.NoError(t, err, "disc %d", d)
	}
	for _, d := range []int{-1, MaxDisc + 1, -10000, 1 << 20} {
		a, err := New("x", d, false, "", "")
		require.Error(t, err, "disc %d", d)
		assert.True(t, errors.Is(err, ErrDiscriminatorRange))
		var de *DiscriminatorError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, d, de.Disc)
		assert.Equal(t, Account{}, a)
	}
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() { MustNew("a", 7, false, "", "") })
	assert.Panics(t, func() { MustNew("a", 10000, false, "", "") })
}

func TestAccount_String(t *testing.T) {
	a := MustNew("bob", 4321, false, "SILVER", "OK")
	assert.Equal(t, "Account name: bob\n\tDiscriminator: 4321\n\tNitro: 0\n\tBadge: SILVER\n\tStatus: OK", a.String())
	assert.Equal(t, "bob#0007", MustNew("bob", 7, true, "", "").Tag())
}
