package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"liner/internal/config"
	"liner/internal/testsupport"
)

func setupCLITestEnv(t *testing.T) (*config.Config, string) {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	configPath := filepath.Join(t.TempDir(), "liner.toml")
	writeTestConfig(t, configPath, cfg)
	return cfg, configPath
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
source_dir = %q
output_dir = %q
log_dir = %q

[build]
mode = %q
workers = %d
`, cfg.Paths.SourceDir, cfg.Paths.OutputDir, cfg.Paths.LogDir, cfg.Build.Mode, cfg.Build.Workers)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestBuildCommand(t *testing.T) {
	cfg, configPath := setupCLITestEnv(t)
	testsupport.WriteRecord(t, cfg.Paths.SourceDir, "pontchartrain.md", testsupport.RecordFields{
		Title: "Pontchartrain",
	})
	testsupport.WriteRecord(t, cfg.Paths.SourceDir, "recessional.md", testsupport.RecordFields{
		Title: "Recessional", Bitrate: "711kbps", Length: "4:05",
	})

	out, _, err := runCLI(t, configPath, "build")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	requireContains(t, out, "Build Summary")
	requireContains(t, out, "catalog built")

	for _, name := range []string{
		"_index.md",
		filepath.Join("tracks", "pontchartrain.md"),
		filepath.Join("search", "index.toml"),
		"catalog.db",
	} {
		if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestValidateCommandReportsFailures(t *testing.T) {
	cfg, configPath := setupCLITestEnv(t)
	testsupport.WriteRecord(t, cfg.Paths.SourceDir, "good.md", testsupport.RecordFields{
		Title: "Whatever You Want",
	})
	testsupport.WriteRecord(t, cfg.Paths.SourceDir, "bad.md", testsupport.RecordFields{
		Title: "Broken", Bitrate: "fast",
	})

	out, _, err := runCLI(t, configPath, "validate")
	if err == nil {
		t.Fatal("validate succeeded with a malformed record")
	}
	requireContains(t, err.Error(), "1 of 2 records failed validation")
	requireContains(t, out, "bad.md")

	if _, statErr := os.Stat(filepath.Join(cfg.Paths.OutputDir, "_index.md")); !os.IsNotExist(statErr) {
		t.Error("validate wrote export output")
	}
}

func TestSearchCommand(t *testing.T) {
	cfg, configPath := setupCLITestEnv(t)
	testsupport.WriteRecord(t, cfg.Paths.SourceDir, "pontchartrain.md", testsupport.RecordFields{
		Title: "Pontchartrain",
	})
	testsupport.WriteRecord(t, cfg.Paths.SourceDir, "recessional.md", testsupport.RecordFields{
		Title: "Recessional", Bitrate: "711kbps", Length: "4:05",
	})

	out, _, err := runCLI(t, configPath, "search", "teng")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "/tracks/pontchartrain")
	requireContains(t, out, "/tracks/recessional")

	out, _, err = runCLI(t, configPath, "search", "--prefix", "pont")
	if err != nil {
		t.Fatalf("prefix search: %v", err)
	}
	requireContains(t, out, "/tracks/pontchartrain")
	if strings.Contains(out, "/tracks/recessional") {
		t.Errorf("prefix search matched unrelated track:\n%s", out)
	}

	out, _, err = runCLI(t, configPath, "search", "zzz")
	if err != nil {
		t.Fatalf("search with no hits: %v", err)
	}
	requireContains(t, out, "no matches")

	_, _, err = runCLI(t, configPath, "search", "--prefix", "   ")
	if err == nil {
		t.Fatal("blank prefix query succeeded")
	}
}

func TestConfigInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	_, _, err = runCLI(t, "", "config", "init", "--path", target)
	if err == nil {
		t.Fatal("config init overwrote an existing file")
	}
}
