package main

// version is stamped by the release workflow; the default marks dev builds.
var version = "0.1.0-dev"

func getVersion() string {
	return version
}
