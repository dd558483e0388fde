package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type StoriesConfig struct {
	Path string `json:"path"`
}

func (c *StoriesConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("path is required"))
	}

	return el.Err()
}
