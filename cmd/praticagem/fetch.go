package main

import (
	"encoding/json"
	"fmt"
)

// Run scrapes the movement page once and prints the result to stdout.
func (c *FetchCmd) Run(deps *Dependencies) error {
	movements, err := deps.Movements.Movements(deps.Ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(movements); err != nil {
		return fmt.Errorf("failed to encode movements: %w", err)
	}
	return nil
}
