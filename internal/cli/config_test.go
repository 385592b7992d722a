package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig

	if cfg.TemplateFile != "" {
		t.Errorf("expected no default template file, got '%s'", cfg.TemplateFile)
	}
	if cfg.Output != "-" {
		t.Errorf("expected default output '-', got '%s'", cfg.Output)
	}
	if cfg.JSON != false {
		t.Errorf("expected default json false, got %v", cfg.JSON)
	}
	if cfg.Verbose != false {
		t.Errorf("expected default verbose false, got %v", cfg.Verbose)
	}
}

func TestApplyFlagsToConfig_Overrides(t *testing.T) {
	cfg := DefaultConfig

	ApplyFlagsToConfig(&cfg, "query.sql", "out.txt", true, true)

	if cfg.TemplateFile != "query.sql" {
		t.Errorf("expected template file from flag 'query.sql', got '%s'", cfg.TemplateFile)
	}
	if cfg.Output != "out.txt" {
		t.Errorf("expected output from flag 'out.txt', got '%s'", cfg.Output)
	}
	if cfg.JSON != true {
		t.Errorf("expected json from flag true, got %v", cfg.JSON)
	}
	if cfg.Verbose != true {
		t.Errorf("expected verbose from flag true, got %v", cfg.Verbose)
	}
}

func TestApplyFlagsToConfig_EmptyFlagsPreserveConfig(t *testing.T) {
	cfg := Config{
		TemplateFile: "original.sql",
		Output:       "original.txt",
	}

	ApplyFlagsToConfig(&cfg, "", "", false, false)

	if cfg.TemplateFile != "original.sql" {
		t.Error("empty flag should not change template file")
	}
	if cfg.Output != "original.txt" {
		t.Error("empty flag should not change output")
	}
}

func TestConfigValidate_EmptyOutput(t *testing.T) {
	cfg := Config{Output: ""}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty output")
	}

	configErr, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("expected ConfigError, got %T", err)
	}
	if configErr.Field != "output" {
		t.Errorf("expected error field 'output', got '%s'", configErr.Field)
	}
	if configErr.Suggestion == "" {
		t.Error("expected suggestion to be provided")
	}
}

func TestParseArgFlags(t *testing.T) {
	args, err := ParseArgFlags([]string{"location", "=x", "loc=NL="})
	if err == nil {
		t.Errorf("expected error for malformed pairs, got %v", args)
	}

	args, err = ParseArgFlags([]string{"location=NL", "end=5", "note="})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(args))
	}
	if args[0].Name != "location" || args[0].Value != "NL" {
		t.Errorf("unexpected first argument: %+v", args[0])
	}
	if args[2].Name != "note" || args[2].Value != "" {
		t.Errorf("expected empty value to be allowed, got %+v", args[2])
	}
}

func TestParseArgFlags_ValueWithEquals(t *testing.T) {
	args, err := ParseArgFlags([]string{"expr=a=b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args[0].Value != "a=b" {
		t.Errorf("expected value split on first '=', got %v", args[0].Value)
	}
}

func TestLoadTemplate(t *testing.T) {
	cfg := DefaultConfig

	if _, err := LoadTemplate(&cfg, ""); err == nil {
		t.Error("expected error when neither file nor argument given")
	}

	src, err := LoadTemplate(&cfg, "SELECT $x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != "SELECT $x" {
		t.Errorf("expected inline template, got '%s'", src)
	}

	path := filepath.Join(t.TempDir(), "query.sql")
	if err := os.WriteFile(path, []byte("SELECT $y"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.TemplateFile = path
	src, err = LoadTemplate(&cfg, "ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != "SELECT $y" {
		t.Errorf("expected template from file, got '%s'", src)
	}
}
