// Package config loads splice settings from layered sources.
//
// Layers, later ones win:
//  1. embedded defaults
//  2. a project file (splice.toml, .splice.toml, splice.yaml, .splice.yaml)
//  3. SPLICE_ environment variables
//  4. command line overrides
package config
