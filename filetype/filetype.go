package filetype

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileType is a semantic classification of a file based on its extension.
type FileType string

const (
	Python     FileType = "python"
	JavaScript FileType = "javascript"
	TypeScript FileType = "typescript"
	Kotlin     FileType = "kotlin"
	Java       FileType = "java"
	Go         FileType = "go"
	Rust       FileType = "rust"
	CPP        FileType = "cpp"
	C          FileType = "c"
	CSharp     FileType = "csharp"
	Ruby       FileType = "ruby"
	PHP        FileType = "php"
	Swift      FileType = "swift"
	Markdown   FileType = "markdown"
	JSON       FileType = "json"
	YAML       FileType = "yaml"
	XML        FileType = "xml"
	HTML       FileType = "html"
	CSS        FileType = "css"
	Other      FileType = "other"
)

// typeExtensions lists each recognized type with its extensions.
// This is a slice rather than a map so that classification order is fixed:
// the first type whose extension set contains the file's extension wins,
// which keeps any future overlapping extensions deterministic.
var typeExtensions = []struct {
	Type       FileType
	Extensions []string
}{
	{Python, []string{".py", ".pyi", ".pyx", ".pxd"}},
	{JavaScript, []string{".js", ".mjs", ".cjs"}},
	{TypeScript, []string{".ts", ".tsx", ".d.ts"}},
	{Kotlin, []string{".kt", ".kts"}},
	{Java, []string{".java"}},
	{Go, []string{".go"}},
	{Rust, []string{".rs"}},
	{CPP, []string{".cpp", ".cxx", ".cc", ".hpp", ".hxx", ".h++"}},
	{C, []string{".c", ".h"}},
	{CSharp, []string{".cs"}},
	{Ruby, []string{".rb"}},
	{PHP, []string{".php"}},
	{Swift, []string{".swift"}},
	{Markdown, []string{".md", ".markdown"}},
	{JSON, []string{".json"}},
	{YAML, []string{".yml", ".yaml"}},
	{XML, []string{".xml"}},
	{HTML, []string{".html", ".htm"}},
	{CSS, []string{".css", ".scss", ".sass", ".less"}},
}

// Classify returns the FileType for a file path based on its extension.
// The match is case-insensitive. Unrecognized extensions yield Other.
func Classify(path string) FileType {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Other
	}
	for _, entry := range typeExtensions {
		for _, candidate := range entry.Extensions {
			if ext == candidate {
				return entry.Type
			}
		}
	}
	return Other
}

// Parse converts a type name into a FileType. The lookup is case-insensitive.
// Unknown names produce an error listing every valid type name.
func Parse(name string) (FileType, error) {
	lowered := FileType(strings.ToLower(name))
	if lowered == Other {
		return Other, nil
	}
	for _, entry := range typeExtensions {
		if entry.Type == lowered {
			return entry.Type, nil
		}
	}
	return "", fmt.Errorf("unknown file type %q, valid types are: %s", name, strings.Join(Names(), ", "))
}

// Names returns every valid type name in classification order, ending with "other".
func Names() []string {
	names := make([]string, 0, len(typeExtensions)+1)
	for _, entry := range typeExtensions {
		names = append(names, string(entry.Type))
	}
	return append(names, string(Other))
}

// Extensions returns a fresh type-to-extensions mapping. The copy is embedded
// in persisted snapshots so they stay interpretable on their own.
func Extensions() map[FileType][]string {
	result := make(map[FileType][]string, len(typeExtensions))
	for _, entry := range typeExtensions {
		extensions := make([]string, len(entry.Extensions))
		copy(extensions, entry.Extensions)
		result[entry.Type] = extensions
	}
	return result
}
