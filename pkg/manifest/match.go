package manifest

import (
	"github.com/glorpus-work/mcget/pkg/errors"
	"github.com/glorpus-work/mcget/pkg/model"
	"github.com/hashicorp/go-version"
)

// Aliases accepted by Match in place of a concrete version id.
const (
	AliasLatest         = "latest"
	AliasLatestSnapshot = "latest-snapshot"
)

// Match maps a user-supplied version query to a concrete version id. The
// query may be an exact id, one of the latest aliases, or a version
// constraint ("~> 1.20", ">= 1.19, < 1.20") matched against release
// versions, in which case the newest satisfying release wins.
func Match(m *model.VersionManifest, query string) (string, error) {
	switch query {
	case AliasLatest:
		return m.Latest.Release, nil
	case AliasLatestSnapshot:
		return m.Latest.Snapshot, nil
	}

	if m.Find(query) != nil {
		return query, nil
	}

	constraint, err := version.NewConstraint(query)
	if err != nil {
		return "", errors.Wrapf(errors.ErrVersionNotFound, "%s", query)
	}

	var best *version.Version
	var bestID string
	for i := range m.Versions {
		entry := &m.Versions[i]
		if !entry.IsRelease() {
			// Snapshot ids like "23w31a" are not comparable versions.
			continue
		}
		v, err := version.NewVersion(entry.ID)
		if err != nil {
			continue
		}
		if !constraint.Check(v) {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestID = entry.ID
		}
	}
	if best == nil {
		return "", errors.Wrapf(errors.ErrVersionNotFound, "no release satisfies %q", query)
	}
	return bestID, nil
}
