package cache

import (
	"fmt"

	"github.com/bitrise-io/go-utils/v2/log"
)

// FolderAPI is the part of the task tracker needed to resolve folders.
type FolderAPI interface {
	Folders(parentID string) (map[string]string, error)
	CreateFolder(parentID, title string) (string, error)
}

// FolderCache maps folder titles to folder IDs under a single parent folder
// for the lifetime of one run.
// Check-then-create is not atomic: concurrent runs against the same parent
// may create folders with the same title.
type FolderCache interface {
	Load() error
	Resolve(title string) (string, error)
}

type folderCache struct {
	api      FolderAPI
	logger   log.Logger
	parentID string
	folders  map[string]string
}

// NewFolderCache ...
func NewFolderCache(api FolderAPI, logger log.Logger, parentID string) FolderCache {
	return &folderCache{
		api:      api,
		logger:   logger,
		parentID: parentID,
	}
}

// Load lists the existing child folders of the parent folder.
func (c *folderCache) Load() error {
	folders, err := c.api.Folders(c.parentID)
	if err != nil {
		return err
	}

	c.folders = folders
	c.logger.Printf("%d existing folder(s) found under %s", len(folders), c.parentID)
	return nil
}

// Resolve returns the ID of the folder with the given title, creating it when it does not exist yet.
func (c *folderCache) Resolve(title string) (string, error) {
	if c.folders == nil {
		if err := c.Load(); err != nil {
			return "", err
		}
	}

	if id, ok := c.folders[title]; ok {
		return id, nil
	}

	id, err := c.api.CreateFolder(c.parentID, title)
	if err != nil {
		return "", fmt.Errorf("failed to ensure folder (%s): %w", title, err)
	}
	c.folders[title] = id
	return id, nil
}
