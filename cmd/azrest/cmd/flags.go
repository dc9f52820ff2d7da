package cmd

import "fmt"

// requireFlag fails when a mandatory flag was not given.
func requireFlag(name, value string) error {
	if value == "" {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}
