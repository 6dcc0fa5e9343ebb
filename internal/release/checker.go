package release

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
)

// ErrUpToDate is returned when the current version is already the latest.
var ErrUpToDate = errors.New("already up to date")

// devVersion marks builds without an injected release version.
const devVersion = "dev"

// Checker compares the running version against the latest GitHub release.
type Checker struct {
	currentVersion string
	repository     string
	client         Client
}

// NewChecker creates a Checker for the "owner/name" repository.
func NewChecker(currentVersion, repository string, client Client) *Checker {
	return &Checker{
		currentVersion: currentVersion,
		repository:     repository,
		client:         client,
	}
}

// CheckLatest returns the latest release, or ErrUpToDate if the current
// version is not older than it. Dev builds always see the latest release.
func (c *Checker) CheckLatest(ctx context.Context) (*Release, error) {
	owner, name, found := strings.Cut(c.repository, "/")
	if !found || owner == "" || name == "" {
		return nil, errors.Newf("invalid release repository %q", c.repository)
	}

	release, err := c.client.GetLatestRelease(ctx, owner, name)
	if err != nil {
		return nil, errors.Wrap(err, "checking latest release")
	}

	// Dev builds always get the latest
	if c.currentVersion == devVersion {
		return release, nil
	}

	latestVer, err := semver.NewVersion(strings.TrimPrefix(release.TagName, "v"))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing latest version %q", release.TagName)
	}

	currentVer, err := semver.NewVersion(strings.TrimPrefix(c.currentVersion, "v"))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing current version %q", c.currentVersion)
	}

	if !currentVer.LessThan(latestVer) {
		return nil, ErrUpToDate
	}

	return release, nil
}
