package version

import (
	"fmt"
	"runtime"
)

// These variables are injected at build time with -ldflags "-X ...".

// Version is the version of irsa-jwks.
var Version = "development"

// Commit is the commit hash of the build
var Commit string

// BuildDate is the date it was built
var BuildDate string

// String returns a one line description of the build.
func String() string {
	return fmt.Sprintf("irsa-jwks %s %s/%s", Version, runtime.GOOS, runtime.GOARCH)
}
