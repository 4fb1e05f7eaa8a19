package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProjectNameFrom(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"my-app", "my-app"},
		{"My App", "my-app"},
		{"v1.2", "v1-2"},
		{"___", "volt-project"},
		{"", "volt-project"},
	}
	for _, tc := range cases {
		if got := projectNameFrom(tc.input); got != tc.want {
			t.Fatalf("projectNameFrom(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFindVoltTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	manifest := filepath.Join(root, "volt.toml")
	if err := os.WriteFile(manifest, []byte("[package]\nname = \"demo\"\n"), 0o600); err != nil {
		t.Fatalf("write volt.toml: %v", err)
	}

	path, ok, err := findVoltToml(nested)
	if err != nil {
		t.Fatalf("findVoltToml error: %v", err)
	}
	if !ok {
		t.Fatal("expected manifest to be found")
	}
	if path != manifest {
		t.Fatalf("found %q, want %q", path, manifest)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "volt.toml")
	data := `# test manifest
[package]
name = "demo"

[parse]
dialects = ["jsx", "typeanno"]
source_type = "module"
max_diagnostics = 25
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write volt.toml: %v", err)
	}
	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("loadProjectConfig: %v", err)
	}
	if cfg.Package.Name != "demo" {
		t.Fatalf("package name = %q", cfg.Package.Name)
	}
	if len(cfg.Parse.Dialects) != 2 || cfg.Parse.Dialects[0] != "jsx" {
		t.Fatalf("dialects = %v", cfg.Parse.Dialects)
	}
	if cfg.Parse.SourceType != "module" {
		t.Fatalf("source_type = %q", cfg.Parse.SourceType)
	}
	if cfg.Parse.MaxDiagnostics != 25 {
		t.Fatalf("max_diagnostics = %d", cfg.Parse.MaxDiagnostics)
	}
}

func TestLoadProjectConfigRejectsBadSourceType(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "volt.toml")
	data := "[package]\nname = \"demo\"\n\n[parse]\nsource_type = \"esm\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write volt.toml: %v", err)
	}
	if _, err := loadProjectConfig(path); err == nil {
		t.Fatal("expected error for bad source_type")
	}
}

func TestLoadProjectConfigRequiresPackageName(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "volt.toml")
	if err := os.WriteFile(path, []byte("[package]\n"), 0o600); err != nil {
		t.Fatalf("write volt.toml: %v", err)
	}
	if _, err := loadProjectConfig(path); err == nil {
		t.Fatal("expected error for missing package name")
	}
}
