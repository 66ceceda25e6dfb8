package version

const UnknownVersion = "unknown"

// Set at build time with `-ldflags "-X github.com/bokysan/base64ace/internal/version.GitTag=..."`
var (
	GitCommit string // long commit hash of source tree, e.g. "0b5ed7a"
	GitBranch string // current branch name the code is built off, e.g. "master"
	GitTag    string // current tag name the code is built off, e.g. "v1.5.0"
	GitState  string // whether there are uncommitted changes, e.g. "clean" or "dirty"
	BuildDate string // RFC3339 formatted UTC date, e.g. "2016-08-04T18:07:54Z"
	Version   string // contents of ./VERSION file, if exists
	GoVersion string // the version of go, e.g. "go version go1.10.3 darwin/amd64"
)

// Detail is one labelled line of build information
type Detail struct {
	Label string
	Value string
}

// AppVersion prefers the git tag over the VERSION file
func AppVersion() string {
	if GitTag != "" {
		return GitTag
	} else if Version != "" {
		return Version
	}

	return UnknownVersion
}

// Details lists the known build information in display order. Values which were not provided at build
// time are left out.
func Details() []Detail {
	all := []Detail{
		{"Git tag", GitTag},
		{"Git branch", GitBranch},
		{"Git state", GitState},
		{"Go version", GoVersion},
	}

	res := make([]Detail, 0, len(all))
	for _, d := range all {
		if d.Value != "" {
			res = append(res, d)
		}
	}
	return res
}
