// Package catalog normalizes image set and asset identifiers and picks
// deterministic defaults for entities that have not chosen an image.
package catalog

import (
	"errors"
	"hash/fnv"
	"path"
	"strings"
)

const defaultAlgorithm = "asset-default-v1"

var (
	ErrSetNotFound  = errors.New("asset set is not configured")
	ErrSetEmpty     = errors.New("asset set has no assets")
	ErrEntityID     = errors.New("entity id is required")
	ErrEntityType   = errors.New("entity type is required")
	ErrAssetInvalid = errors.New("asset id is invalid for set")
)

// Set defines one image set and its stable ordered assets.
type Set struct {
	ID       string
	AssetIDs []string
}

// Manifest is one image domain: its sets plus set and asset aliases.
type Manifest struct {
	ID           string
	DefaultSet   string
	Sets         map[string]Set
	SetAliases   map[string]string
	AssetAliases map[string]string
}

// SelectionInput captures set/asset selection inputs for one entity.
type SelectionInput struct {
	EntityType string
	EntityID   string
	SetID      string
	AssetID    string
}

// NormalizeSetID resolves aliases and verifies configured set membership.
func (m Manifest) NormalizeSetID(raw string) (string, bool) {
	setID := strings.TrimSpace(raw)
	if setID == "" {
		setID = strings.TrimSpace(m.DefaultSet)
	}
	if canonical, ok := m.SetAliases[setID]; ok {
		setID = canonical
	}
	_, ok := m.Sets[setID]
	return setID, ok && setID != ""
}

// NormalizeAssetID resolves aliases and trims whitespace.
func (m Manifest) NormalizeAssetID(raw string) string {
	assetID := strings.TrimSpace(raw)
	if canonical, ok := m.AssetAliases[assetID]; ok {
		return canonical
	}
	return assetID
}

// Contains reports whether assetID belongs to setID after normalization.
func (m Manifest) Contains(setID, assetID string) bool {
	canonicalSetID, ok := m.NormalizeSetID(setID)
	if !ok {
		return false
	}
	assetID = m.NormalizeAssetID(assetID)
	for _, candidate := range m.Sets[canonicalSetID].AssetIDs {
		if candidate == assetID {
			return assetID != ""
		}
	}
	return false
}

// DeterministicAsset picks a stable asset of setID for the entity.
func (m Manifest) DeterministicAsset(entityType, entityID, setID string) (string, error) {
	entityType = strings.TrimSpace(entityType)
	if entityType == "" {
		return "", ErrEntityType
	}
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return "", ErrEntityID
	}
	canonicalSetID, ok := m.NormalizeSetID(setID)
	if !ok {
		return "", ErrSetNotFound
	}
	assets := m.Sets[canonicalSetID].AssetIDs
	if len(assets) == 0 {
		return "", ErrSetEmpty
	}
	hasher := fnv.New64a()
	for _, part := range []string{entityType, entityID, canonicalSetID, defaultAlgorithm} {
		_, _ = hasher.Write([]byte(part))
		_, _ = hasher.Write([]byte{0})
	}
	return assets[hasher.Sum64()%uint64(len(assets))], nil
}

// ResolveSelection returns canonical set and asset identifiers. An empty
// AssetID selects the deterministic default.
func (m Manifest) ResolveSelection(input SelectionInput) (string, string, error) {
	setID, ok := m.NormalizeSetID(input.SetID)
	if !ok {
		return "", "", ErrSetNotFound
	}
	assetID := m.NormalizeAssetID(input.AssetID)
	if assetID == "" {
		picked, err := m.DeterministicAsset(input.EntityType, input.EntityID, setID)
		if err != nil {
			return "", "", err
		}
		return setID, picked, nil
	}
	if !m.Contains(setID, assetID) {
		return "", "", ErrAssetInvalid
	}
	return setID, assetID, nil
}

// AssetKey returns the extension-less storage key of an asset.
func AssetKey(version, domain, setID, assetID string) (string, error) {
	parts := []string{version, domain, setID, assetID}
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
		if parts[i] == "" {
			return "", ErrAssetInvalid
		}
	}
	return path.Clean(path.Join(parts...)), nil
}
