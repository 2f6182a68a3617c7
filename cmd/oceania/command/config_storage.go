package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-oceania/internal/storage"
	"github.com/pixil98/go-oceania/internal/world"
)

type StorageConfig struct {
	Locations AssetConfig[*world.Location]      `json:"locations"`
	Npcs      AssetConfig[*world.Npc]           `json:"npcs"`
	Texts     AssetConfig[*world.ForbiddenText] `json:"texts"`
}

// BuildWorld loads all content stores and cross-checks their references.
func (c *StorageConfig) BuildWorld() (*world.World, error) {
	locations, err := c.Locations.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating location store: %w", err)
	}
	npcs, err := c.Npcs.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating npc store: %w", err)
	}
	texts, err := c.Texts.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating text store: %w", err)
	}

	w, err := world.New(locations, npcs, texts)
	if err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return w, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Locations.Validate("locations"))
	el.Add(c.Npcs.Validate("npcs"))
	el.Add(c.Texts.Validate("texts"))
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
