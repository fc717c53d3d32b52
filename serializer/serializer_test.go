package serializer

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase58EncodeKnownValues(t *testing.T) {
	cases := []struct {
		in  []byte
		out string
	}{
		{in: []byte("Hello"), out: "9Ajdvzr"},
		{in: []byte{1, 2, 3}, out: "Ldp"},
		{in: []byte{0, 0, 255}, out: "115Q"},
		{in: []byte{0}, out: "1"},
		{in: []byte{}, out: ""},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("test-%d", i), func(t *testing.T) {
			assert.Equal(t, c.out, Base58Encode(c.in))
		})
	}
}

func TestBase58EncodeDecodeSuccess(t *testing.T) {
	for i := 0; i < 20; i++ {
		t.Run(fmt.Sprintf("test-%d", i), func(t *testing.T) {
			data := make([]byte, 1+i*3)
			_, err := io.ReadFull(rand.Reader, data)
			assert.Nil(t, err)
			data[0] = 0

			encoded := Base58Encode(data)
			assert.Equal(t, byte('1'), encoded[0])

			decoded, err := Base58Decode(encoded)
			assert.Nil(t, err)
			assert.Equal(t, data, decoded)
			assert.Equal(t, encoded, Base58Encode(decoded))
		})
	}
}

func TestBase58DecodeFailure(t *testing.T) {
	for _, in := range []string{"0", "O", "I", "l", "9Ajd0zr", " "} {
		t.Run(in, func(t *testing.T) {
			decoded, err := Base58Decode(in)
			assert.Nil(t, decoded)
			assert.True(t, errors.Is(err, ErrInvalidBase58Input))
		})
	}
}

func TestBase58DecodeEmpty(t *testing.T) {
	decoded, err := Base58Decode("")
	assert.Nil(t, err)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
	assert.Equal(t, "", Base58Encode(decoded))
}

func TestHexEncodeDecodeSuccess(t *testing.T) {
	decoded, err := HexDecode("48656C6c6f")
	assert.Nil(t, err)
	assert.Equal(t, []byte("Hello"), decoded)
	assert.Equal(t, "48656c6c6f", HexEncode(decoded))
}

func TestHexDecodeFailure(t *testing.T) {
	for _, in := range []string{"abc", "zz", "0x00"} {
		t.Run(in, func(t *testing.T) {
			_, err := HexDecode(in)
			assert.True(t, errors.Is(err, ErrInvalidHexInput))
		})
	}
}

func BenchmarkBase58EncodeDecode(b *testing.B) {
	data := make([]byte, 64)
	_, err := io.ReadFull(rand.Reader, data)
	assert.Nil(b, err)

	for n := 0; n < b.N; n++ {
		_, err := Base58Decode(Base58Encode(data))
		assert.Nil(b, err)
	}
}
