// Package platform maps the running system onto the OS/architecture
// vocabulary used by the remote version manifests.
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Manifest OS names.
const (
	OSWindows = "windows"
	OSMacOS   = "osx"
	OSLinux   = "linux"
)

// Platform represents a target platform with OS and Architecture expressed
// in manifest vocabulary ("windows"/"osx"/"linux", "x86"/"x86_64"/"arm64"...).
type Platform struct {
	OS   string `yaml:"os" json:"os"`
	Arch string `yaml:"arch" json:"arch"`
}

// Current returns the platform mcget is running on.
func Current() Platform {
	return Platform{
		OS:   NormalizeOS(runtime.GOOS),
		Arch: NormalizeArch(runtime.GOARCH),
	}
}

// String returns a string representation of the platform.
func (p Platform) String() string {
	return fmt.Sprintf("%s/%s", p.OS, p.Arch)
}

// Bits returns the pointer width string used for the ${arch} token in
// native classifier names.
func (p Platform) Bits() string {
	switch p.Arch {
	case "x86", "arm":
		return "32"
	default:
		return "64"
	}
}

// MatchOS reports whether a manifest OS name refers to this platform.
// "macos" appears in newer manifests as an alias for "osx".
func (p Platform) MatchOS(name string) bool {
	name = strings.ToLower(name)
	if name == "macos" {
		name = OSMacOS
	}
	return name == p.OS
}

// MatchArch reports whether a manifest architecture name refers to this
// platform.
func (p Platform) MatchArch(arch string) bool {
	return NormalizeArch(arch) == p.Arch
}

// ClasspathSeparator returns the path-list separator used when joining
// classpath entries for the given OS.
func (p Platform) ClasspathSeparator() string {
	if p.OS == OSWindows {
		return ";"
	}
	return ":"
}

// SharedLibrarySuffixes lists the file extensions of platform shared
// libraries found inside native archives.
var SharedLibrarySuffixes = []string{".so", ".dylib", ".dll"}

// NormalizeOS maps Go and manifest OS names to manifest vocabulary.
func NormalizeOS(os string) string {
	switch strings.ToLower(os) {
	case "darwin", "macos", "osx":
		return OSMacOS
	case "win", "windows":
		return OSWindows
	default:
		return strings.ToLower(os)
	}
}

// NormalizeArch maps Go and manifest architecture names to manifest vocabulary.
func NormalizeArch(arch string) string {
	switch strings.ToLower(arch) {
	case "amd64", "x86_64", "x64":
		return "x86_64"
	case "386", "x86", "i386", "i686":
		return "x86"
	case "arm64", "aarch64":
		return "arm64"
	default:
		return strings.ToLower(arch)
	}
}
