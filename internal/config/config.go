package config

import "os"

const (
	DefaultRootPath   = "~/landsat/quicklooks"
	DefaultOutputPath = "."
)

// RootPath returns the quicklook catalog root from CLEARSCENE_ROOT,
// falling back to DefaultRootPath.
func RootPath() string {
	if env := os.Getenv("CLEARSCENE_ROOT"); env != "" {
		return env
	}
	return DefaultRootPath
}

// OutputPath returns the output folder from CLEARSCENE_OUTPUT,
// falling back to the working directory.
func OutputPath() string {
	if env := os.Getenv("CLEARSCENE_OUTPUT"); env != "" {
		return env
	}
	return DefaultOutputPath
}
