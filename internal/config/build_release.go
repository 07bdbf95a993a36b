//go:build !debug

package config

const DebugBuild = false
