package main

import "flag"

// Command-line flags.
var (
	// configFlag names the viewer configuration file.
	configFlag = flag.String("config", "config.yaml", "path to the YAML configuration file")

	// sceneFlag names a scene file; empty uses the built-in two-wall scene.
	sceneFlag = flag.String("scene", "", "path to a YAML scene file (default: built-in scene)")
)
