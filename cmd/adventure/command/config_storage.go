package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Locations AssetConfig[*game.Location] `json:"locations"`
	Items     AssetConfig[*game.Item]     `json:"items"`
}

func (c *StorageConfig) BuildRegistry() (*game.Registry, error) {
	locations, err := c.Locations.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating location store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}

	registry, err := game.NewRegistry(locations, items)
	if err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return registry, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Locations.Validate("locations"))
	el.Add(c.Items.Validate("items"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
