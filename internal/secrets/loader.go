// Package secrets resolves credential values from files or inline
// configuration, keeping raw keys out of the config tree.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source names a secret and the places it may come from. File wins over
// Value when both are set.
type Source struct {
	Name  string
	Value string
	File  string
}

// Load resolves the secret and trims surrounding whitespace. An empty
// result is an error: a blank key file and an unset source both fail
// with the secret's name in the message.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	value := src.Value
	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		value = string(data)
	}

	secret := strings.TrimSpace(value)
	if secret == "" {
		if file != "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return "", fmt.Errorf("%s is not configured", name)
	}

	return secret, nil
}
