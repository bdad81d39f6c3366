package Accounts

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, in string) ([]Account, error) {
	t.Helper()
	d := NewDecoder(strings.NewReader(in))
	var out []Account
	for {
		a, err := d.Decode()
		if err == io.EOF {
			return out, nil
		} else if err != nil {
			return out, err
		}
		out = append(out, a)
	}
}

func TestDecoder(t *testing.T) {
	got, err := decodeAll(t, "alice,1234,1,GOLD,OK\nbob,4321,0,SILVER,OK\n")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, MustNew("alice", 1234, true, "GOLD", "OK"), got[0])
	assert.Equal(t, MustNew("bob", 4321, false, "SILVER", "OK"), got[1])
}

func TestDecoder_BoolForms(t *testing.T) {
	got, err := decodeAll(t, "a,1,true,,\r\nb,2,false,,\nc,3,T,,")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].HasNitro())
	assert.False(t, got[1].HasNitro())
	assert.True(t, got[2].HasNitro())
}

func TestDecoder_FieldCount(t *testing.T) {
	for _, line := range []string{"alice,1234,1,GOLD", "alice,1234,1,GOLD,OK,extra", "alice"} {
		got, err := decodeAll(t, "bob,4321,0,SILVER,OK\n"+line+"\n")
		require.Error(t, err, line)
		assert.Len(t, got, 1, "records before the bad line are still returned")
		assert.True(t, errors.Is(err, ErrMalformedRecord))
		var me *MalformedRecordError
		require.True(t, errors.As(err, &me))
		assert.Equal(t, 2, me.Line)
		assert.Equal(t, len(strings.Split(line, ",")), me.Fields)
	}
}

func TestDecoder_BlankLine(t *testing.T) {
	got, err := decodeAll(t, "alice,1,1,G,OK\n\nbob,2,0,S,OK\n")
	require.Error(t, err)
	assert.Len(t, got, 1)
	var me *MalformedRecordError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 2, me.Line)
	assert.Equal(t, 1, me.Fields)
}

func TestDecoder_NoQuoting(t *testing.T) {
	_, err := decodeAll(t, `"a,b",1,1,G,OK`)
	var me *MalformedRecordError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 1, me.Line)
	assert.Equal(t, 6, me.Fields)

	// an open quote doesn't swallow the lines after it.
	got, err := decodeAll(t, "alice,1,1,\"GOLD,OK\ncarol,2,0,S,OK\n")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, `"GOLD`, got[0].Badge())
	assert.Equal(t, "carol#0002", got[1].Tag())

	_, err = decodeAll(t, "alice,1,1,\"GOLD\ncarol,2,0,S,OK\n")
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 1, me.Line)
	assert.Equal(t, 4, me.Fields)
}

func TestDecoder_BadValues(t *testing.T) {
	cases := map[string]error{
		"a,xx,1,b,s":    strconv.ErrSyntax,
		"a,1,maybe,b,s": strconv.ErrSyntax,
		"a,10000,1,b,s": ErrDiscriminatorRange,
		"a,-1,1,b,s":    ErrDiscriminatorRange,
	}
	for in, cause := range cases {
		_, err := decodeAll(t, in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrMalformedRecord), in)
		assert.True(t, errors.Is(err, cause), in)
	}
}

func TestDecoder_Delimiter(t *testing.T) {
	d := NewDecoder(strings.NewReader("carol;12;0;NONE;AWAY\n"))
	d.SetDelimiter(';')
	a, err := d.Decode()
	require.NoError(t, err)
	assert.Equal(t, "carol#0012", a.Tag())
	_, err = d.Decode()
	assert.Equal(t, io.EOF, err)
}
