// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-yoyow
//
// go-yoyow is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-yoyow is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-yoyow.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"strconv"
)

// VersionMajor and VersionMinor are bumped by hand on release.
const (
	VersionMajor = 0
	VersionMinor = 3
)

// Build time variables set through -ldflags.
var (
	// BuildNumber is the monotonic build number.
	BuildNumber string

	// CommitHash is the git commit id the build was made from.
	CommitHash string

	// Branch is the git branch the build was made from.
	Branch string

	// DefaultDeadlock is "enable" on branches where mutex deadlock
	// detection should stay on.
	DefaultDeadlock string
)

// Version is the full version information of a build.
type Version struct {
	Major       int
	Minor       int
	BuildNumber int
	CommitHash  string
	Branch      string
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.BuildNumber)
}

// GetCurrentVersion returns the version of the running binary.
func GetCurrentVersion() Version {
	build, _ := strconv.Atoi(BuildNumber)
	return Version{
		Major:       VersionMajor,
		Minor:       VersionMinor,
		BuildNumber: build,
		CommitHash:  CommitHash,
		Branch:      Branch,
	}
}

// FormatVersionAndLicense renders the version line printed by --version.
func FormatVersionAndLicense() string {
	v := GetCurrentVersion()
	return fmt.Sprintf("%s [%s] (commit #%s)\n%s", v, v.Branch, v.CommitHash, GetLicenseInfo())
}

// GetLicenseInfo retrieves the current license information
func GetLicenseInfo() string {
	return "go-yoyow is licensed with AGPLv3.0"
}

// DeadlockDetectionEnabled reports whether the build asked for deadlock
// detection on its mutexes.
func DeadlockDetectionEnabled() bool {
	return DefaultDeadlock == "enable"
}
