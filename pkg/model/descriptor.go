package model

import (
	"encoding/json"
	"strings"

	"github.com/glorpus-work/mcget/pkg/platform"
)

// VersionDescriptor is the parsed per-version document: the libraries and
// assets the version needs plus the metadata the external launch layer
// consumes. It is immutable once parsed.
type VersionDescriptor struct {
	ID         string          `json:"id"`
	Libraries  []Library       `json:"libraries"`
	AssetIndex AssetIndexRef   `json:"assetIndex"`
	Assets     string          `json:"assets"`
	Downloads  ClientDownloads `json:"downloads"`
	MainClass  string          `json:"mainClass"`
	Arguments  json.RawMessage `json:"arguments"`
	JavaInfo   JavaVersionInfo `json:"javaVersion"`
}

// ParseVersionDescriptor decodes descriptor JSON.
func ParseVersionDescriptor(data []byte) (*VersionDescriptor, error) {
	var d VersionDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// AssetIndexRef points at the asset index for a version.
type AssetIndexRef struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	SHA1 string `json:"sha1"`
}

// ClientDownloads lists the main game jars.
type ClientDownloads struct {
	Client Artifact `json:"client"`
	Server Artifact `json:"server"`
}

// JavaVersionInfo carries the Java runtime requirement.
type JavaVersionInfo struct {
	MajorVersion int `json:"majorVersion"`
}

// Artifact is a single downloadable file.
type Artifact struct {
	// Path is the artifact's location relative to the libraries store. The
	// main jar downloads leave it empty.
	Path string `json:"path,omitempty"`
	URL  string `json:"url"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
}

// LibraryDownloads holds the download variants of a library.
type LibraryDownloads struct {
	// Artifact is the ordinary jar, absent for natives-only libraries.
	Artifact *Artifact `json:"artifact,omitempty"`
	// Classifiers maps native classifier names to their archives.
	Classifiers map[string]Artifact `json:"classifiers,omitempty"`
}

// Library is one library entry in a version descriptor.
type Library struct {
	Name      string           `json:"name"`
	Downloads LibraryDownloads `json:"downloads"`
	// Natives maps a manifest OS name to a classifier-name template;
	// the template may contain the ${arch} token.
	Natives map[string]string `json:"natives,omitempty"`
	Rules   []Rule            `json:"rules,omitempty"`
}

// Rule is one allow/disallow predicate over the target platform.
type Rule struct {
	Action string `json:"action"`
	OS     RuleOS `json:"os,omitempty"`
}

// RuleOS is the optional platform predicate of a rule.
type RuleOS struct {
	Name string `json:"name,omitempty"`
	Arch string `json:"arch,omitempty"`
}

// Allowed evaluates the library's rules against a platform. Every rule
// carrying a predicate must agree with its action: an allow rule whose
// predicate misses the platform excludes the library, as does a disallow
// rule whose predicate hits it. A library without rules is always allowed.
func (l *Library) Allowed(p platform.Platform) bool {
	for _, rule := range l.Rules {
		allowed := strings.EqualFold(rule.Action, "allow")
		if rule.OS.Name != "" && allowed != p.MatchOS(rule.OS.Name) {
			return false
		}
		if rule.OS.Arch != "" && allowed != p.MatchArch(rule.OS.Arch) {
			return false
		}
	}
	return true
}

// NativeClassifier resolves the library's native archive for a platform.
// The natives map is tried with both the bare OS name and a "natives-"
// prefix, and the ${arch} token in the classifier name is substituted with
// the platform's pointer width. Platforms absent from the natives map are
// silently skipped (ok == false, artifact == nil); a natives map that names
// a classifier missing from the downloads is reported through ok == true
// with a nil artifact so the caller can warn.
func (l *Library) NativeClassifier(p platform.Platform) (artifact *Artifact, ok bool) {
	if len(l.Natives) == 0 {
		return nil, false
	}
	key, found := l.Natives["natives-"+p.OS]
	if !found {
		key, found = l.Natives[p.OS]
	}
	if !found {
		return nil, false
	}
	key = strings.ReplaceAll(key, "${arch}", p.Bits())

	classifier, found := l.Downloads.Classifiers[key]
	if !found {
		return nil, true
	}
	return &classifier, true
}
