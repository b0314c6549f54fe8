// Package util provides small generic helpers shared by the conversion
// packages.
package util
