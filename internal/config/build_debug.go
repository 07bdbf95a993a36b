//go:build debug

package config

// DebugBuild is set by building with -tags debug.
const DebugBuild = true
