// Package version reports build metadata for gocommons.
//
// Values injected at link time win; otherwise the module version and VCS
// settings recorded by the Go toolchain are used:
//
//	go build -ldflags "-X github.com/nwrobel/gocommons/version.Version=v1.2.0 \
//	    -X github.com/nwrobel/gocommons/version.Commit=abc1234"
//
// Archive summaries record GetVersion so that a summary can be traced back
// to the library release that wrote it.
package version
