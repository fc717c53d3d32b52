package fileoperations

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"unicode/utf8"
)

var (
	ErrFileRead  = errors.New("file read error")
	ErrFileWrite = errors.New("file write error")
	ErrJSONParse = errors.New("json parse error")
)

// ReadWallet reads wallet byte array from the JSON file.
func (h Helper) ReadWallet(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: file %q is not valid UTF-8", ErrFileRead, path)
	}

	return h.DecodeWallet(string(raw))
}

// SaveWallet saves wallet byte array to the JSON file, overwriting the existing one.
func (h Helper) SaveWallet(path string, w []byte) error {
	text, err := h.EncodeWallet(w)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(text), os.FileMode(h.cfg.FileMode)); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	return nil
}

// EncodeWallet encodes wallet byte array to pretty printed JSON array of integers.
func (h Helper) EncodeWallet(w []byte) (string, error) {
	// []byte marshals to base64 string, numbers are required.
	values := make([]int, len(w))
	for i, b := range w {
		values[i] = int(b)
	}

	raw, err := json.MarshalIndent(values, "", h.cfg.Indent)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeWallet decodes JSON array of integers in range 0 - 255 to wallet byte array.
func (h Helper) DecodeWallet(text string) ([]byte, error) {
	var values []int
	if err := json.Unmarshal([]byte(text), &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSONParse, err)
	}
	if values == nil {
		return nil, fmt.Errorf("%w: expected JSON array of bytes", ErrJSONParse)
	}

	w := make([]byte, 0, len(values))
	for i, v := range values {
		if v < 0 || v > math.MaxUint8 {
			return nil, fmt.Errorf("%w: value %d at index %d is out of byte range", ErrJSONParse, v, i)
		}
		w = append(w, byte(v))
	}
	return w, nil
}
