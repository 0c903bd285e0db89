package config

import "path/filepath"

// Cache layout helpers. Every resolver derives its on-disk locations from
// these so the layout is defined in exactly one place:
//
//	<internal>/versions/version_manifest.json
//	<internal>/versions/<id>/<id>.json
//	<internal>/versions/<id>/<id>.jar
//	<internal>/versions/<id>/natives/
//	<internal>/libraries/<artifact path>
//	<internal>/natives/<classifier path>
//	<internal>/java/adoptium/
//	<assets>/indexes/<id>.json
//	<assets>/objects/<2-hex-prefix>/<hash>
//	<assets>/virtual -> <assets>/objects

// ManifestPath returns the cache location of the global version manifest.
func (c *Config) ManifestPath() string {
	return filepath.Join(c.Settings.InternalDir, "versions", "version_manifest.json")
}

// VersionDir returns the per-version cache directory.
func (c *Config) VersionDir(id string) string {
	return filepath.Join(c.Settings.InternalDir, "versions", id)
}

// DescriptorPath returns the cache location of a version descriptor.
func (c *Config) DescriptorPath(id string) string {
	return filepath.Join(c.VersionDir(id), id+".json")
}

// ClientJarPath returns the cache location of the client jar for a version.
func (c *Config) ClientJarPath(id string) string {
	return filepath.Join(c.VersionDir(id), id+".jar")
}

// NativesDir returns the per-version directory native shared libraries are
// extracted into.
func (c *Config) NativesDir(id string) string {
	return filepath.Join(c.VersionDir(id), "natives")
}

// LibrariesDir returns the shared library artifact store.
func (c *Config) LibrariesDir() string {
	return filepath.Join(c.Settings.InternalDir, "libraries")
}

// NativeArchivesDir returns the store for native archives before extraction.
func (c *Config) NativeArchivesDir() string {
	return filepath.Join(c.Settings.InternalDir, "natives")
}

// JavaDir returns the directory Java runtimes are installed into.
func (c *Config) JavaDir() string {
	return filepath.Join(c.Settings.InternalDir, "java")
}

// AssetIndexPath returns the cache location of an asset index.
func (c *Config) AssetIndexPath(id string) string {
	return filepath.Join(c.Settings.AssetsDir, "indexes", id+".json")
}

// ObjectsDir returns the root of the content-addressed asset store.
func (c *Config) ObjectsDir() string {
	return filepath.Join(c.Settings.AssetsDir, "objects")
}

// ObjectPath returns the store location for an asset hash: the first two hex
// characters form a subdirectory, the full hash is the filename.
func (c *Config) ObjectPath(hash string) string {
	return filepath.Join(c.ObjectsDir(), hash[:2], hash)
}

// VirtualDir returns the legacy alias path that is symlinked to the object
// store for older consumers.
func (c *Config) VirtualDir() string {
	return filepath.Join(c.Settings.AssetsDir, "virtual")
}
