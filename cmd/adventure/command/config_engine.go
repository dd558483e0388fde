package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type EngineConfig struct {
	StartLocation string `json:"start_location"`
}

func (c *EngineConfig) validate() error {
	el := errors.NewErrorList()

	if c.StartLocation == "" {
		el.Add(fmt.Errorf("start_location is required"))
	}

	return el.Err()
}
