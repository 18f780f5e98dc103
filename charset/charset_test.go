package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	testcases := []struct {
		desc    string
		name    string
		wantErr bool
	}{
		{
			desc: "latin-1",
			name: "ISO-8859-1",
		},
		{
			desc: "utf-8",
			name: "UTF-8",
		},
		{
			desc:    "unknown name",
			name:    "KLINGON-1",
			wantErr: true,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			enc, err := Lookup(tc.name)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnsupported)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, enc)
		})
	}
}

func TestEncodeText(t *testing.T) {
	latin1, err := Lookup("ISO-8859-1")
	require.NoError(t, err)

	t.Run("nil encoding is a passthrough", func(t *testing.T) {
		out, err := EncodeText(nil, "café")
		assert.NoError(t, err)
		assert.Equal(t, []byte("café"), out)
	})

	t.Run("latin-1", func(t *testing.T) {
		out, err := EncodeText(latin1, "café")
		assert.NoError(t, err)
		assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, out)
	})

	t.Run("unrepresentable rune", func(t *testing.T) {
		_, err := EncodeText(latin1, "€1.50")
		assert.ErrorIs(t, err, ErrEncode)
	})
}

func TestDecodeText(t *testing.T) {
	latin1, err := Lookup("ISO-8859-1")
	require.NoError(t, err)

	t.Run("nil encoding is a passthrough", func(t *testing.T) {
		out, err := DecodeText(nil, []byte("plain"))
		assert.NoError(t, err)
		assert.Equal(t, "plain", out)
	})

	t.Run("latin-1", func(t *testing.T) {
		out, err := DecodeText(latin1, []byte{'c', 'a', 'f', 0xE9})
		assert.NoError(t, err)
		assert.Equal(t, "café", out)
	})

	t.Run("round trip", func(t *testing.T) {
		in := "façade"
		raw, err := EncodeText(latin1, in)
		require.NoError(t, err)

		out, err := DecodeText(latin1, raw)
		assert.NoError(t, err)
		assert.Equal(t, in, out)
	})
}
