package command

import (
	"github.com/pixil98/go-errors"
)

type Config struct {
	Storage StorageConfig `json:"storage"`
	Engine  EngineConfig  `json:"engine"`
	Nats    NatsConfig    `json:"nats"`
	Api     ApiConfig     `json:"api"`
	Stories StoriesConfig `json:"stories"`
	Relay   RelayConfig   `json:"relay"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Storage.validate())
	el.Add(c.Engine.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Api.validate())
	el.Add(c.Stories.validate())
	el.Add(c.Relay.validate())

	return el.Err()
}
