package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	// DomainSessionCovers is the storage domain of session cover images.
	DomainSessionCovers = "session-covers"
	// SessionCoverSetV1 is the default session cover set.
	SessionCoverSetV1 = "session_cover_set_v1"
	// EntitySession is the entity type used to pick session covers.
	EntitySession = "session"
)

//go:embed data/session_covers.v1.yaml
var sessionCoverManifestYAML []byte

var (
	loadOnce            sync.Once
	sessionCoverCatalog Manifest
	loadErr             error
)

type manifestDocument struct {
	ID           string            `yaml:"id"`
	DefaultSet   string            `yaml:"default_set"`
	Sets         []setDocument     `yaml:"sets"`
	SetAliases   map[string]string `yaml:"set_aliases"`
	AssetAliases map[string]string `yaml:"asset_aliases"`
}

type setDocument struct {
	ID       string   `yaml:"id"`
	AssetIDs []string `yaml:"asset_ids"`
}

// SessionCoverManifest returns a copy of the embedded session cover manifest.
func SessionCoverManifest() (Manifest, error) {
	loadOnce.Do(func() {
		sessionCoverCatalog, loadErr = DecodeManifest(sessionCoverManifestYAML)
	})
	if loadErr != nil {
		return Manifest{}, fmt.Errorf("decode session cover manifest: %w", loadErr)
	}
	return copyManifest(sessionCoverCatalog), nil
}

// DecodeManifest parses a YAML manifest document.
func DecodeManifest(raw []byte) (Manifest, error) {
	var doc manifestDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Manifest{}, err
	}
	manifestID := strings.TrimSpace(doc.ID)
	defaultSetID := strings.TrimSpace(doc.DefaultSet)
	if manifestID == "" || defaultSetID == "" {
		return Manifest{}, fmt.Errorf("manifest id/default set are required")
	}

	sets := make(map[string]Set, len(doc.Sets))
	for _, rawSet := range doc.Sets {
		setID := strings.TrimSpace(rawSet.ID)
		if setID == "" {
			continue
		}
		if _, exists := sets[setID]; exists {
			return Manifest{}, fmt.Errorf("duplicate set id %q", setID)
		}
		sets[setID] = Set{ID: setID, AssetIDs: normalizeStringList(rawSet.AssetIDs)}
	}
	if _, ok := sets[defaultSetID]; !ok {
		return Manifest{}, fmt.Errorf("default set %q is missing", defaultSetID)
	}

	return Manifest{
		ID:           manifestID,
		DefaultSet:   defaultSetID,
		Sets:         sets,
		SetAliases:   copyStringMap(doc.SetAliases),
		AssetAliases: copyStringMap(doc.AssetAliases),
	}, nil
}

func normalizeStringList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		normalized := strings.TrimSpace(value)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

func copyStringMap(source map[string]string) map[string]string {
	out := make(map[string]string, len(source))
	for key, value := range source {
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return out
}

func copyManifest(source Manifest) Manifest {
	out := Manifest{
		ID:           source.ID,
		DefaultSet:   source.DefaultSet,
		Sets:         make(map[string]Set, len(source.Sets)),
		SetAliases:   copyStringMap(source.SetAliases),
		AssetAliases: copyStringMap(source.AssetAliases),
	}
	for setID, set := range source.Sets {
		out.Sets[setID] = Set{ID: set.ID, AssetIDs: append([]string(nil), set.AssetIDs...)}
	}
	return out
}
