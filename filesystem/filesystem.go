// Package filesystem routes all file access through a swappable afero backend,
// so tests can run against memory instead of the user's disk.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches to the real filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to an empty in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Exists reports whether path exists on the active backend. Stat errors other than not-exist count as absent.
func Exists(path string) bool {
	ok, err := backend.Exists(path)
	return err == nil && ok
}
