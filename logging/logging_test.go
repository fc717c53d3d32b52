package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bartossh/base58cli/logger"
)

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestHelperWritesJSONLines(t *testing.T) {
	var buf0, buf1 bytes.Buffer
	h := New(func(err error) { t.Fatal(err) }, &buf0, &buf1)

	h.Debug("debug message")
	h.Info("info message")
	h.Warn("warn message")
	h.Error("error message")
	h.Fatal("fatal message")

	assert.Equal(t, buf0.String(), buf1.String())

	levels := []string{"debug", "info", "warn", "error", "fatal"}
	scanner := bufio.NewScanner(&buf0)
	i := 0
	for scanner.Scan() {
		var l logger.Log
		assert.Contains(t, scanner.Text(), `"id":`)
		err := json.Unmarshal(scanner.Bytes(), &l)
		assert.Nil(t, err)
		assert.Equal(t, levels[i], l.Level)
		assert.Equal(t, levels[i]+" message", l.Msg)
		assert.NotEmpty(t, l.ID)
		assert.False(t, l.CreatedAt.IsZero())
		i++
	}
	assert.Equal(t, len(levels), i)
}

func TestHelperCallsOnErr(t *testing.T) {
	var errs []error
	h := New(func(err error) { errs = append(errs, err) }, failingWriter{})

	h.Info("message")
	assert.Len(t, errs, 1)
}

func TestHelperWithoutWriters(t *testing.T) {
	h := New(nil)
	assert.NotPanics(t, func() { h.Error("nothing to write to") })
}

var _ logger.Logger = Helper{}
