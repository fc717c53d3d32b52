package fileoperations

import "os"

const (
	defaultFileMode os.FileMode = 0644
	defaultIndent               = "  "
)

// Config holds configuration of the file operator Helper.
type Config struct {
	FileMode uint32 `yaml:"file_mode"` // permission bits of the saved wallet file, 0644 if not set
	Indent   string `yaml:"indent"`    // indentation of the pretty printed wallet JSON, two spaces if not set
}

// Helper holds all file operation methods.
type Helper struct {
	cfg Config
}

// New creates new Helper.
func New(cfg Config) Helper {
	if cfg.FileMode == 0 {
		cfg.FileMode = uint32(defaultFileMode)
	}
	if cfg.Indent == "" {
		cfg.Indent = defaultIndent
	}
	return Helper{
		cfg: cfg,
	}
}
