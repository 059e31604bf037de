package aws

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// EnvConfigFile overrides the default config file location when set,
// mirroring the AWS CLI.
const EnvConfigFile = "AWS_CONFIG_FILE"

// ErrConfigNotFound is returned when the AWS config file doesn't exist
var ErrConfigNotFound = errors.New("AWS config file not found")

// DefaultConfigPath returns the default AWS config file path
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".aws", "config"), nil
}

// ResolveConfigPath picks the config file to read: an explicit path wins,
// then AWS_CONFIG_FILE, then ~/.aws/config. The result is tilde-expanded.
func ResolveConfigPath(explicit string) (string, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return "", err
		}
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand config path: %w", err)
	}
	return expanded, nil
}
