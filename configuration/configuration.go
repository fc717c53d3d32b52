package configuration

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/bartossh/base58cli/fileoperations"
	"github.com/bartossh/base58cli/logging"
)

// Configuration is the main configuration of the application that corresponds to the *.yaml file
// that holds the configuration.
type Configuration struct {
	FileOperator fileoperations.Config `yaml:"file_operator"`
	Logger       logging.Config        `yaml:"logger"`
	StrictExit   bool                  `yaml:"strict_exit"` // Exit with non zero status when the operation reports an error.
}

// Read reads the configuration from the file and returns the Configuration with set fields according to the yaml setup.
func Read(path string) (Configuration, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, err
	}

	var main Configuration
	err = yaml.Unmarshal(buf, &main)
	if err != nil {
		return Configuration{}, fmt.Errorf("in file %q: %w", path, err)
	}

	return main, err
}
