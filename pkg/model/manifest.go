// Package model holds the wire types for the remote documents the engine
// consumes: the global version manifest, per-version descriptors, and asset
// indexes. Parsed documents are read-only; downstream stages never mutate
// them.
package model

import "encoding/json"

// LatestVersions names the newest release and snapshot in the manifest.
type LatestVersions struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

// VersionEntry is one version listed in the global manifest.
type VersionEntry struct {
	// ID is the version identifier, e.g. "1.20.1" or "23w31a".
	ID string `json:"id"`
	// Type is "release", "snapshot", "old_beta" or "old_alpha".
	Type string `json:"type"`
	// URL points at the full version descriptor.
	URL string `json:"url"`
	// SHA1 is the expected digest of the descriptor document.
	SHA1 string `json:"sha1"`
}

// VersionManifest is the global index of all known versions, newest first.
// The version list is not indexed; lookups scan it linearly.
type VersionManifest struct {
	Latest   LatestVersions `json:"latest"`
	Versions []VersionEntry `json:"versions"`
}

// ParseVersionManifest decodes manifest JSON.
func ParseVersionManifest(data []byte) (*VersionManifest, error) {
	var m VersionManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Find returns the entry for id, or nil when the manifest does not list it.
func (m *VersionManifest) Find(id string) *VersionEntry {
	for i := range m.Versions {
		if m.Versions[i].ID == id {
			return &m.Versions[i]
		}
	}
	return nil
}

// IsRelease reports whether the entry is a stable release.
func (e *VersionEntry) IsRelease() bool {
	return e.Type == "release"
}
