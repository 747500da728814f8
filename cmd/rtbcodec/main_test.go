package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/anirudhraja/openrtb"
	"github.com/anirudhraja/openrtb/enum"
)

const (
	validRequest     = `{"imp":[{"banner":{"h":250,"w":300},"id":"1","future":true}],"id":"r1","at":501}`
	canonicalRequest = `{"id":"r1","imp":[{"id":"1","banner":{"w":300,"h":250}}],"at":501}`
	invalidRequest   = `{"id":"r2","imp":[{"id":"1","video":{"mimes":[],"startdelay":-5}}]}`
)

// run executes the root command in an empty working directory with no
// config file in reach.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RTBCODEC_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNormalize_Stdin(t *testing.T) {
	out, err := run(t, validRequest, "normalize", "--color", "never")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if out != canonicalRequest+"\n" {
		t.Errorf("expected %s, got %s", canonicalRequest, out)
	}
}

func TestNormalize_Pretty(t *testing.T) {
	out, err := run(t, `{"id":"p","imp":[]}`, "normalize", "--pretty", "--color", "never")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	want := "{\n  \"id\": \"p\",\n  \"imp\": []\n}\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestNormalize_Color(t *testing.T) {
	out, err := run(t, `{"id":"c","imp":[]}`, "normalize", "--color", "always")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", out)
	}
}

func TestNormalize_Digest(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", []byte(validRequest))
	b := writeFile(t, dir, "b.json", []byte(" "+canonicalRequest+"\n"))

	out, err := run(t, "", "normalize", "--digest", a, b)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	sumA := strings.Fields(lines[0])[0]
	sumB := strings.Fields(lines[1])[0]
	if !strings.HasPrefix(sumA, "blake3:") || len(sumA) != len("blake3:")+64 {
		t.Errorf("unexpected digest %q", sumA)
	}
	if sumA != sumB {
		t.Errorf("equivalent requests should share a digest: %s vs %s", sumA, sumB)
	}

	c := writeFile(t, dir, "c.json", []byte(`{"id":"e","imp":[],"ext":{"a":1,"b":2}}`))
	d := writeFile(t, dir, "d.json", []byte(`{"id":"e","imp":[],"ext":{"b":2,"a":1}}`))
	out, err = run(t, "", "normalize", "--digest", c, d)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	lines = strings.Split(strings.TrimSpace(out), "\n")
	if strings.Fields(lines[0])[0] == strings.Fields(lines[1])[0] {
		t.Error("ext objects are kept verbatim, so reordered ext members should change the digest")
	}
}

func TestNormalize_StrictAndJSONC(t *testing.T) {
	if _, err := run(t, `{"id":"s","imp":[]}`, "normalize", "--strict"); err == nil {
		t.Error("strict mode should reject an empty imp list")
	}

	in := "{\n  // request\n  \"id\": \"j\",\n  \"imp\": [],\n}"
	if _, err := run(t, in, "normalize"); err == nil {
		t.Error("comments should be rejected without --jsonc")
	}
	out, err := run(t, in, "normalize", "--jsonc", "--color", "never")
	if err != nil {
		t.Fatalf("normalize --jsonc failed: %v", err)
	}
	if out != `{"id":"j","imp":[]}`+"\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNormalize_Compressed(t *testing.T) {
	dir := t.TempDir()

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	gw.Write([]byte(validRequest))
	gw.Close()

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	zst := enc.EncodeAll([]byte(validRequest), nil)
	enc.Close()

	var lz bytes.Buffer
	lw := lz4.NewWriter(&lz)
	lw.Write([]byte(validRequest))
	lw.Close()

	tests := []struct {
		name string
		data []byte
	}{
		{"request.json.gz", gz.Bytes()},
		{"request.json.zst", zst},
		{"request.json.lz4", lz.Bytes()},
		// detected by magic bytes alone
		{"gzip.bin", gz.Bytes()},
		{"zstd.bin", zst},
		{"lz4.bin", lz.Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name, tt.data)
			out, err := run(t, "", "normalize", "--color", "never", path)
			if err != nil {
				t.Fatalf("normalize failed: %v", err)
			}
			if out != canonicalRequest+"\n" {
				t.Errorf("expected %s, got %s", canonicalRequest, out)
			}
		})
	}
}

func TestNormalize_DecodeError(t *testing.T) {
	_, err := run(t, invalidRequest, "normalize")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "imp[0].video.startdelay") {
		t.Errorf("error should carry the field path, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", []byte(validRequest))
	bad := writeFile(t, dir, "bad.json", []byte(invalidRequest))
	other := writeFile(t, dir, "other.json", []byte(canonicalRequest))

	out, err := run(t, "", "validate", "--jobs", "2", good, bad, other)
	if err == nil || !strings.Contains(err.Error(), "1 of 3 requests failed") {
		t.Fatalf("expected one failure, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 result lines, got %q", out)
	}
	if lines[0] != "ok "+good || lines[2] != "ok "+other {
		t.Errorf("unexpected ok lines %q", lines)
	}
	if !strings.HasPrefix(lines[1], "fail "+bad+": error at path imp[0].video.startdelay") {
		t.Errorf("unexpected fail line %q", lines[1])
	}

	if _, err := run(t, "", "validate", good, other); err != nil {
		t.Errorf("all-valid run should succeed, got %v", err)
	}
	if _, err := run(t, "", "validate", filepath.Join(dir, "absent.json")); err == nil {
		t.Error("unreadable input should fail")
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr string
	}{
		{args: []string{"code", "AuctionType", "501"}, want: "AuctionType ExchangeSpecific(501) 501\n"},
		{args: []string{"code", "StartDelay", "-1"}, want: "StartDelay GenericMidRoll -1\n"},
		{args: []string{"code", "MaxExtendedAdDuration", "0"}, want: "MaxExtendedAdDuration NotAllowed 0\n"},
		{args: []string{"code", "AuctionType", "3"}, wantErr: "invalid value: 3"},
		{args: []string{"code", "AuctionType", "1.0"}, wantErr: "invalid type"},
		{args: []string{"code", "Colour", "1"}, wantErr: "unknown coded type"},
		{args: []string{"code", "Flag"}, wantErr: "expected a type name and an integer"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args[1:], "_"), func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("expected %q, got %q", tt.want, out)
			}
		})
	}
}

func TestCode_List(t *testing.T) {
	out, err := run(t, "", "code", "--list")
	if err != nil {
		t.Fatalf("code --list failed: %v", err)
	}
	names := strings.Split(strings.TrimSpace(out), "\n")
	if len(names) != len(enum.Names()) || names[0] != "APIFramework" {
		t.Errorf("unexpected list %q", names)
	}
}

func TestSchema(t *testing.T) {
	out, err := run(t, "", "schema", "BidRequest")
	if err != nil {
		t.Fatalf("schema failed: %v", err)
	}
	for _, want := range []string{"BidRequest", "id", "required", "imp", "required,nonempty", "[]Imp", "*AuctionType"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	if _, err := run(t, "", "schema", "Nope"); err == nil {
		t.Error("unknown object should fail")
	}
}

func TestSchema_Proto(t *testing.T) {
	dir := t.TempDir()
	proto := writeFile(t, dir, "openrtb.proto", []byte(`
syntax = "proto2";
package openrtb;
message Regs {
  optional bool coppa = 1;
  optional string gpp = 2;
  extensions 100 to 9999;
}
message Segment {
  optional string id = 1;
  optional string name = 2;
  optional string value = 3;
}
`))

	out, err := run(t, "", "schema", "--proto", proto, "Regs", "Segment")
	if err == nil {
		t.Fatal("expected drift to be reported as failure")
	}
	if !strings.Contains(out, "Regs.gpp: missing in go") {
		t.Errorf("unexpected drift report:\n%s", out)
	}

	out, err = run(t, "", "schema", "--proto", proto, "Segment")
	if err != nil {
		t.Fatalf("expected no drift, got %v", err)
	}
	if !strings.Contains(out, "no differences") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSample(t *testing.T) {
	out, err := run(t, "", "sample", "--imps", "3", "--video")
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	req, err := openrtb.New(openrtb.WithStrict()).DecodeBidRequest([]byte(strings.TrimSpace(out)))
	if err != nil {
		t.Fatalf("sample output does not decode: %v", err)
	}
	if len(req.Imp) != 3 || req.Imp[2].ID != "3" || req.Imp[0].Video == nil {
		t.Errorf("unexpected sample %+v", req)
	}
	if len(req.ID) != 36 {
		t.Errorf("expected a uuid request id, got %q", req.ID)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "rtbcodec.yaml", []byte("output:\n  pretty: true\n  color: never\ndecode:\n  strict: true\n"))

	if _, err := run(t, `{"id":"x","imp":[]}`, "--config", cfg, "normalize"); err == nil {
		t.Error("decode.strict from the config file should apply")
	}
	out, err := run(t, `{"id":"x","imp":[{"id":"1"}]}`, "--config", cfg, "normalize")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !strings.Contains(out, "\n  \"id\": \"x\"") {
		t.Errorf("output.pretty from the config file should apply, got %q", out)
	}
	if _, err := run(t, `{"id":"x","imp":[]}`, "--config", cfg, "normalize", "--strict=false"); err != nil {
		t.Errorf("flags should override the config file, got %v", err)
	}
}
