// Package version reports the diarize2kaldi build version.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/diarize2kaldi/version.Version=1.0.0" ./cmd/diarize2kaldi
//
// Missing values fall back to the module build info recorded by the Go toolchain.
package version
