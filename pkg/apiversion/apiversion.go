/*
Copyright 2019 Alexander Eldeib.
*/

// Package apiversion orders Azure REST API versions such as 2024-03-01 and
// 2024-08-15-preview.
package apiversion

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

var pattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:-([0-9A-Za-z]+))?$`)

// Version is a parsed API version. The date maps onto major.minor.patch and
// any suffix onto a semver prerelease, so a preview sorts before the stable
// release of the same day.
type Version struct {
	raw string
	sv  *semver.Version
}

// Parse reads a YYYY-MM-DD version with an optional suffix.
func Parse(s string) (Version, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, errors.Errorf("%q is not an api version", s)
	}
	if _, err := time.Parse("2006-01-02", s[:10]); err != nil {
		return Version{}, errors.Wrapf(err, "%q is not an api version", s)
	}
	year, _ := strconv.ParseUint(m[1], 10, 64)
	month, _ := strconv.ParseUint(m[2], 10, 64)
	day, _ := strconv.ParseUint(m[3], 10, 64)
	return Version{raw: s, sv: semver.New(year, month, day, m[4], "")}, nil
}

// MustParse is Parse for package-level values; it panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	return v.raw
}

// Preview reports whether the version carries a suffix.
func (v Version) Preview() bool {
	return v.sv.Prerelease() != ""
}

// Date is the day the version was published.
func (v Version) Date() time.Time {
	return time.Date(int(v.sv.Major()), time.Month(v.sv.Minor()), int(v.sv.Patch()), 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or 1 as v is older than, equal to or newer than o.
func (v Version) Compare(o Version) int {
	return v.sv.Compare(o.sv)
}

// Newer reports whether v is strictly newer than o.
func (v Version) Newer(o Version) bool {
	return v.Compare(o) > 0
}

// Sort orders versions from oldest to newest.
func Sort(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) < 0
	})
}

// Latest returns the newest version, skipping previews when stable is set.
func Latest(versions []Version, stable bool) (Version, bool) {
	var (
		best  Version
		found bool
	)
	for _, v := range versions {
		if stable && v.Preview() {
			continue
		}
		if !found || v.Newer(best) {
			best, found = v, true
		}
	}
	return best, found
}

// ParseAll parses every string, failing on the first bad one.
func ParseAll(raw ...string) ([]Version, error) {
	out := make([]Version, 0, len(raw))
	for _, s := range raw {
		v, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
