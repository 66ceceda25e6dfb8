package version

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_AppVersion(t *testing.T) {
	defer func(tag, v string) {
		GitTag, Version = tag, v
	}(GitTag, Version)

	GitTag, Version = "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	Version = "1.0.0"
	require.Equal(t, "1.0.0", AppVersion())

	GitTag = "v1.0.1"
	require.Equal(t, "v1.0.1", AppVersion())
}

func Test_Details(t *testing.T) {
	defer func(tag, branch, state, goVersion string) {
		GitTag, GitBranch, GitState, GoVersion = tag, branch, state, goVersion
	}(GitTag, GitBranch, GitState, GoVersion)

	GitTag, GitBranch, GitState, GoVersion = "v1.0.1", "", "clean", ""

	require.Equal(t, []Detail{
		{"Git tag", "v1.0.1"},
		{"Git state", "clean"},
	}, Details())
}
