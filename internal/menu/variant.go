package menu

// Variant is the build flavour the tree is built for. It is resolved once at
// startup and never changes for the life of the process.
type Variant int

const (
	Release Variant = iota
	Debug
	// DevtoolsEnabled is a release build with devtools explicitly opted in.
	DevtoolsEnabled
)

// ResolveVariant combines the compile-time debug flag with the runtime
// devtools override.
func ResolveVariant(debugBuild, devtoolsOverride bool) Variant {
	switch {
	case debugBuild:
		return Debug
	case devtoolsOverride:
		return DevtoolsEnabled
	default:
		return Release
	}
}

// HasDevtools reports whether the Debug group and console handling are exposed.
func (v Variant) HasDevtools() bool {
	return v == Debug || v == DevtoolsEnabled
}

func (v Variant) String() string {
	switch v {
	case Debug:
		return "debug"
	case DevtoolsEnabled:
		return "devtools-enabled"
	default:
		return "release"
	}
}
