// Package version holds the client identity and API version negotiation.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// ClientInfo identifies the bridge in the hello exchange.
const ClientInfo = "igloo-esphome"

// Current is the API version the bridge speaks.
var Current = APIVersion{Major: 1, Minor: 9}

// Build is the bridge release, overridden at link time with
// -ldflags "-X github.com/igloo-home/esphome-go/pkg/version.Build=...".
var Build = "dev"

// APIVersion is a "major.minor" API version.
type APIVersion struct {
	Major uint32
	Minor uint32
}

// Parse parses a "major.minor" version string.
func Parse(s string) (APIVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return APIVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil || parts[0] == "" {
		return APIVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil || parts[1] == "" {
		return APIVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return APIVersion{Major: uint32(major), Minor: uint32(minor)}, nil
}

// String returns the version as "major.minor".
func (v APIVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible reports whether other has the same major version. Minor
// versions only add messages and fields.
func (v APIVersion) Compatible(other APIVersion) bool {
	return v.Major == other.Major
}

// Less reports whether v is older than other.
func (v APIVersion) Less(other APIVersion) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// UserAgent returns the client info string with the build appended.
func UserAgent() string {
	return ClientInfo + " " + Build
}
