package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindConfig_WalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := FindConfig(nested)
	if err != nil || !ok {
		t.Fatalf("FindConfig: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[tokenize]\nformat = \"json\"\njobs = 4\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tokenize.Format != "json" || cfg.Tokenize.Jobs != 4 {
		t.Errorf("unexpected tokenize section %+v", cfg.Tokenize)
	}
	if cfg.Tokenize.MaxDiagnostics != Default().Tokenize.MaxDiagnostics {
		t.Errorf("max_diagnostics lost its default: %d", cfg.Tokenize.MaxDiagnostics)
	}
	if cfg.Trace.Level != "off" {
		t.Errorf("trace level lost its default: %q", cfg.Trace.Level)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "[tokenize]\ncolour = true\n",
		"bad format":   "[tokenize]\nformat = \"xml\"\n",
		"negative max": "[tokenize]\nmax_diagnostics = -1\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, t.TempDir(), content))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if _, err := LoadConfig(writeConfig(t, t.TempDir(), "[tokenize\n")); err == nil {
		t.Error("expected TOML syntax error")
	}
}

func TestApply_Precedence(t *testing.T) {
	fileFormat, envFormat, flagFormat := "yaml", "json", "msgpack"
	jobs := 8
	trivia := true

	cfg := Default()
	cfg.Tokenize.Format = fileFormat
	cfg = cfg.Apply(Overrides{Format: &envFormat, Jobs: &jobs})
	cfg = cfg.Apply(Overrides{Format: &flagFormat, KeepTrivia: &trivia})

	if cfg.Tokenize.Format != flagFormat {
		t.Errorf("flags must win, got %q", cfg.Tokenize.Format)
	}
	if cfg.Tokenize.Jobs != 8 || !cfg.Tokenize.KeepTrivia {
		t.Errorf("overrides not applied: %+v", cfg.Tokenize)
	}
	if cfg.Tokenize.MaxDiagnostics != 100 {
		t.Errorf("unset override changed value: %d", cfg.Tokenize.MaxDiagnostics)
	}
}

func TestResolve_NoConfig(t *testing.T) {
	flagFormat := "json"
	cfg, path, err := Resolve(t.TempDir(), Overrides{Format: &flagFormat})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tokenize.Format != "json" {
		t.Errorf("flag not applied: %q", cfg.Tokenize.Format)
	}
	if path != "" {
		t.Errorf("unexpected config file %q", path)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvFormat, "yaml")
	t.Setenv(EnvJobs, "3")
	t.Setenv(EnvMaxDiagnostics, "not-a-number")
	t.Setenv(EnvCache, "true")

	o := EnvOverrides()
	if o.Format == nil || *o.Format != "yaml" {
		t.Errorf("format override = %v", o.Format)
	}
	if o.Jobs == nil || *o.Jobs != 3 {
		t.Errorf("jobs override = %v", o.Jobs)
	}
	if o.MaxDiagnostics != nil {
		t.Errorf("unparsable max diagnostics must be ignored, got %d", *o.MaxDiagnostics)
	}
	if o.Cache == nil || !*o.Cache {
		t.Errorf("cache override = %v", o.Cache)
	}
	if o.NFC != nil {
		t.Errorf("unset variable produced override %v", *o.NFC)
	}
}

func TestResolve_FileThenEnvThenFlags(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[tokenize]\nformat = \"yaml\"\njobs = 2\nkeep_trivia = true\n")
	t.Setenv(EnvJobs, "5")
	flagFormat := "json"

	cfg, path, err := Resolve(dir, Overrides{Format: &flagFormat})
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("config file not found")
	}
	if cfg.Tokenize.Format != "json" || cfg.Tokenize.Jobs != 5 || !cfg.Tokenize.KeepTrivia {
		t.Errorf("unexpected layering result %+v", cfg.Tokenize)
	}
}
