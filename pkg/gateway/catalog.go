package gateway

import (
	"context"
	"fmt"
	"sync"
)

// catalogCache holds per-user capability catalogs keyed by model id.
// Entries are replaced wholesale on refresh (last writer wins); duplicate
// fetches are tolerated.
type catalogCache struct {
	mu     sync.RWMutex
	byUser map[string]map[string]Capabilities
}

func newCatalogCache() *catalogCache {
	return &catalogCache{byUser: make(map[string]map[string]Capabilities)}
}

func (c *catalogCache) get(userID string) (map[string]Capabilities, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.byUser[userID]
	return entry, ok
}

func (c *catalogCache) replace(userID string, entry map[string]Capabilities) {
	c.mu.Lock()
	c.byUser[userID] = entry
	c.mu.Unlock()
}

func (c *catalogCache) invalidate(userID string) {
	c.mu.Lock()
	delete(c.byUser, userID)
	c.mu.Unlock()
}

// RefreshCatalog fetches the gateway catalog for a user and replaces their
// cached capability map. Call once per deliberation; concurrent refreshes
// are harmless.
func (c *Client) RefreshCatalog(ctx context.Context, apiKey, userID string) error {
	catalogModels, err := c.ListModels(ctx, apiKey)
	if err != nil {
		return err
	}

	entry := make(map[string]Capabilities, len(catalogModels))
	for _, m := range catalogModels {
		entry[m.ID] = capabilitiesOf(m)
	}
	c.catalog.replace(userID, entry)
	return nil
}

// InvalidateCatalog drops a user's cached catalog (API-key rotation).
func (c *Client) InvalidateCatalog(userID string) {
	c.catalog.invalidate(userID)
}

// UnsupportedAttachments returns one human-readable warning per attachment
// file type present that the model cannot consume. When the user has no
// cached entry for modelID, no warnings are emitted.
func (c *Client) UnsupportedAttachments(userID, modelID string, attachments []Attachment) []string {
	if len(attachments) == 0 {
		return nil
	}
	entry, ok := c.catalog.get(userID)
	if !ok {
		return nil
	}
	caps, ok := entry[modelID]
	if !ok {
		return nil
	}

	var warnings []string
	seen := make(map[string]bool, len(attachments))
	for _, a := range attachments {
		if seen[a.FileType] {
			continue
		}
		seen[a.FileType] = true
		if !supportsType(caps, a.FileType) {
			warnings = append(warnings, fmt.Sprintf(
				"Model %s does not support %s attachments; they may be ignored", modelID, a.FileType))
		}
	}
	return warnings
}

// supportsType maps attachment file types onto capability flags. Both "pdf"
// and generic "file" attachments require the file capability.
func supportsType(caps Capabilities, fileType string) bool {
	switch fileType {
	case "image":
		return caps.Image
	case "pdf", "file":
		return caps.File
	case "audio":
		return caps.Audio
	case "video":
		return caps.Video
	case "text":
		return caps.Text
	default:
		return false
	}
}

// capabilitiesOf derives the capability set from a catalog entry's declared
// input modalities.
func capabilitiesOf(m CatalogModel) Capabilities {
	caps := Capabilities{}
	if m.Architecture == nil {
		// No architecture metadata: assume text-only.
		caps.Text = true
		return caps
	}
	for _, modality := range m.Architecture.InputModalities {
		switch modality {
		case "image":
			caps.Image = true
		case "file":
			caps.File = true
		case "audio":
			caps.Audio = true
		case "video":
			caps.Video = true
		case "text":
			caps.Text = true
		}
	}
	return caps
}
