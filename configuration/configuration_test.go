package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.yaml")
	err := os.WriteFile(path, []byte(`file_operator:
  file_mode: 0600
  indent: "    "
logger:
  log_path: "./base58.log"
strict_exit: true
`), 0644)
	assert.Nil(t, err)

	cfg, err := Read(path)
	assert.Nil(t, err)
	assert.Equal(t, uint32(0600), cfg.FileOperator.FileMode)
	assert.Equal(t, "    ", cfg.FileOperator.Indent)
	assert.Equal(t, "./base58.log", cfg.Logger.LogPath)
	assert.True(t, cfg.StrictExit)
}

func TestReadFailure(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.yaml"))
	assert.NotNil(t, err)

	path := filepath.Join(dir, "broken.yaml")
	err = os.WriteFile(path, []byte("strict_exit: [true"), 0644)
	assert.Nil(t, err)
	_, err = Read(path)
	assert.ErrorContains(t, err, path)
}
