// Package storage defines where converted Kaldi tables are written.
//
// The local subpackage implements Storage on a filesystem directory; tests
// use it over an in-memory filesystem.
package storage
