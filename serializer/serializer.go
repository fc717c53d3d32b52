package serializer

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

var (
	ErrInvalidBase58Input = errors.New("invalid base58 input")
	ErrInvalidHexInput    = errors.New("invalid hex input")
)

// Base58Encode encodes byte array to base58 string.
// Leading zero bytes are kept as leading '1' characters.
func Base58Encode(input []byte) string {
	return base58.Encode(input)
}

// Base58Decode decodes base58 string to byte array.
// Empty input decodes to empty byte array, characters outside of the alphabet are rejected with ErrInvalidBase58Input.
func Base58Decode(input string) ([]byte, error) {
	if input == "" {
		return []byte{}, nil
	}
	decoded, err := base58.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase58Input, err)
	}

	return decoded, nil
}

// HexDecode decodes hex string to byte array.
func HexDecode(input string) ([]byte, error) {
	decoded, err := hex.DecodeString(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHexInput, err)
	}

	return decoded, nil
}

// HexEncode encodes byte array to lowercase hex string.
func HexEncode(input []byte) string {
	return hex.EncodeToString(input)
}
