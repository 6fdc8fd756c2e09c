// Package config provides configuration structures and utilities for
// daft2trello. It defines credential and board settings, resolves the
// configuration file and request cache locations, and loads and saves
// the YAML configuration file.
package config
