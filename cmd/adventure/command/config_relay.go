package command

import (
	"fmt"
	"net/url"
	"time"

	"github.com/pixil98/go-adventure/internal/api"
	"github.com/pixil98/go-errors"
)

type RelayConfig struct {
	BaseUrl string `json:"base_url"`
	Timeout string `json:"timeout"`
}

func (c *RelayConfig) validate() error {
	el := errors.NewErrorList()

	if c.BaseUrl == "" {
		el.Add(fmt.Errorf("base_url is required"))
	} else {
		u, err := url.Parse(c.BaseUrl)
		if err != nil || u.Scheme == "" || u.Host == "" {
			el.Add(fmt.Errorf("base_url must be an absolute url"))
		}
	}

	if c.Timeout != "" {
		_, err := time.ParseDuration(c.Timeout)
		if err != nil {
			el.Add(fmt.Errorf("parsing timeout: %w", err))
		}
	}

	return el.Err()
}

func (c *RelayConfig) BuildRelayClient() (*api.RelayClient, error) {
	timeout := 30 * time.Second
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing timeout: %w", err)
		}
		timeout = d
	}

	return api.NewRelayClient(c.BaseUrl, timeout), nil
}
