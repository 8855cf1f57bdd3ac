// Package version reports the build information of pipekit binaries.
package version
