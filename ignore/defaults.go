package ignore

// fallbackIgnoreDirs are path components excluded when the repository has no
// .gitignore to consult. Hidden components (leading dot) are excluded
// unconditionally, which also covers the implicit .git and .claude rules.
var fallbackIgnoreDirs = map[string]bool{
	"node_modules": true,
	"__pycache__":  true,
	"venv":         true,
	"env":          true,
	"build":        true,
	"dist":         true,
	"target":       true,
}
