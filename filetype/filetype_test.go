package filetype

import (
	"strings"
	"testing"
)

func Test_Classify_KnownExtensions(t *testing.T) {
	tests := []struct {
		path string
		want FileType
	}{
		{"src/main.py", Python},
		{"src/stubs.pyi", Python},
		{"js/app.js", JavaScript},
		{"js/module.mjs", JavaScript},
		{"js/component.tsx", TypeScript},
		{"api/types.d.ts", TypeScript},
		{"cmd/main.go", Go},
		{"lib/core.rs", Rust},
		{"native/engine.cpp", CPP},
		{"native/engine.h", C},
		{"App/Model.cs", CSharp},
		{"docs/README.md", Markdown},
		{"config.yml", YAML},
		{"config.yaml", YAML},
		{"data.json", JSON},
		{"styles/site.scss", CSS},
		{"index.html", HTML},
	}

	for _, tt := range tests {
		if got := Classify(tt.path); got != tt.want {
			t.Errorf("Classify(%s) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func Test_Classify_CaseInsensitive(t *testing.T) {
	if got := Classify("Main.PY"); got != Python {
		t.Errorf("Classify(Main.PY) = %s, want python", got)
	}
	if got := Classify("APP.JS"); got != JavaScript {
		t.Errorf("Classify(APP.JS) = %s, want javascript", got)
	}
}

func Test_Classify_Unrecognized(t *testing.T) {
	for _, path := range []string{"program.cob", "data.bin", "Makefile", "noext"} {
		if got := Classify(path); got != Other {
			t.Errorf("Classify(%s) = %s, want other", path, got)
		}
	}
}

func Test_Parse_ValidNames(t *testing.T) {
	for _, name := range Names() {
		got, err := Parse(name)
		if err != nil {
			t.Errorf("Parse(%s) returned error: %v", name, err)
		}
		if string(got) != name {
			t.Errorf("Parse(%s) = %s", name, got)
		}
	}
}

func Test_Parse_CaseInsensitive(t *testing.T) {
	got, err := Parse("Python")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Python {
		t.Errorf("Parse(Python) = %s, want python", got)
	}
}

func Test_Parse_UnknownListsValidNames(t *testing.T) {
	_, err := Parse("cobol")
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
	for _, want := range []string{"cobol", "python", "typescript", "other"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got: %v", want, err)
		}
	}
}

func Test_Extensions_ReturnsCopy(t *testing.T) {
	first := Extensions()
	first[Python][0] = ".mutated"

	second := Extensions()
	if second[Python][0] != ".py" {
		t.Error("Extensions() must return an independent copy")
	}
}
