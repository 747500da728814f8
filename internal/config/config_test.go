package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RTBCODEC_CONFIG", "")
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected defaults\nwant %+v\ngot  %+v", Default(), cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rtbcodec.yaml")
	content := `
log:
  level: debug
  format: json
  outputs: [stdout, /tmp/rtbcodec.log]
decode:
  strict: true
  jsonc: true
output:
  pretty: true
  color: NEVER
  digest: true
validate:
  jobs: 8
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	if !reflect.DeepEqual(cfg.Log.Outputs, []string{"stdout", "/tmp/rtbcodec.log"}) {
		t.Errorf("unexpected outputs %v", cfg.Log.Outputs)
	}
	if !cfg.Decode.Strict || !cfg.Decode.JSONC {
		t.Errorf("unexpected decode config %+v", cfg.Decode)
	}
	if !cfg.Output.Pretty || !cfg.Output.Digest || cfg.Output.Color != "never" {
		t.Errorf("unexpected output config %+v", cfg.Output)
	}
	if cfg.Output.Style != "monokai" {
		t.Errorf("unset keys should keep defaults, got style %q", cfg.Output.Style)
	}
	if cfg.Validate.Jobs != 8 {
		t.Errorf("expected 8 jobs, got %d", cfg.Validate.Jobs)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("RTBCODEC_CONFIG", "")
	t.Setenv("RTBCODEC_DECODE_STRICT", "true")
	t.Setenv("RTBCODEC_VALIDATE_JOBS", "2")
	t.Setenv("RTBCODEC_LOG_LEVEL", "error")
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Decode.Strict || cfg.Validate.Jobs != 2 || cfg.Log.Level != "error" {
		t.Errorf("environment overrides not applied: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"log level", "log:\n  level: loud\n", "invalid log.level"},
		{"color", "output:\n  color: sometimes\n", "invalid output.color"},
		{"jobs", "validate:\n  jobs: 0\n", "invalid validate.jobs"},
		{"yaml", "log: [unclosed\n", "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rtbcodec.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("an explicit path that does not exist should fail")
	}
}
