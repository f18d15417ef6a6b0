//go:build !windows

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Environment variable tests preclude t.Parallel() throughout this file.

// fakeBrowserOnPath installs a shell script named chromium that answers
// --version, and points PATH at it.
func fakeBrowserOnPath(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bin := filepath.Join(dir, "chromium")
	script := "#!/bin/sh\necho 'Chromium 120.0.0.0'\n"
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil { //nolint:gosec
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)
	t.Setenv("MDTOPDF_BROWSER", "")
	return bin
}

func TestRunDoctor_JSONOutput(t *testing.T) {
	bin := fakeBrowserOnPath(t)

	var buf bytes.Buffer
	if err := runDoctor(&buf, "", true); err != nil {
		t.Fatalf("runDoctor() error: %v", err)
	}

	var report doctorReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON report: %v\noutput: %s", err, buf.String())
	}

	if !report.Browser.Found {
		t.Error("report does not mark the browser as found")
	}
	if report.Browser.Path != bin {
		t.Errorf("browser path = %q, want %q", report.Browser.Path, bin)
	}
	if !strings.Contains(report.Browser.Version, "Chromium") {
		t.Errorf("browser version = %q, want the --version output", report.Browser.Version)
	}
	if report.Env.OS != runtime.GOOS || report.Env.Arch != runtime.GOARCH {
		t.Errorf("platform = %s/%s, want %s/%s",
			report.Env.OS, report.Env.Arch, runtime.GOOS, runtime.GOARCH)
	}
	if !report.System.TempWritable {
		t.Error("report does not mark the temp directory as writable")
	}

	valid := map[string]bool{"ready": true, "warnings": true, "errors": true}
	if !valid[report.Status] {
		t.Errorf("status = %q, want ready/warnings/errors", report.Status)
	}
	if report.Status == "errors" {
		t.Errorf("status = errors with a working browser: %v", report.Errors)
	}
}

func TestRunDoctor_HumanOutput(t *testing.T) {
	fakeBrowserOnPath(t)

	var buf bytes.Buffer
	if err := runDoctor(&buf, "", false); err != nil {
		t.Fatalf("runDoctor() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"mdtopdf doctor", "Browser", "Environment", "System", "Status:"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing section %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "[OK] Found at") {
		t.Errorf("report does not show the resolved browser:\n%s", out)
	}
}

func TestRunDoctor_NoBrowser(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	t.Setenv("MDTOPDF_BROWSER", "")

	var buf bytes.Buffer
	err := runDoctor(&buf, "", false)
	if !errors.Is(err, errNotReady) {
		t.Fatalf("runDoctor() = %v, want errNotReady", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[ERROR] Not found") {
		t.Errorf("report does not flag the missing browser:\n%s", out)
	}
	if !strings.Contains(out, "Status: errors") {
		t.Errorf("report status is not errors:\n%s", out)
	}
}

func TestRunDoctor_ExplicitBrowserWins(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	t.Setenv("MDTOPDF_BROWSER", "")

	dir := t.TempDir()
	bin := filepath.Join(dir, "mybrowser")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\necho 'My 1.0'\n"), 0o755); err != nil { //nolint:gosec
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runDoctor(&buf, bin, true); err != nil {
		t.Fatalf("runDoctor(explicit) error: %v", err)
	}

	var report doctorReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if report.Browser.Path != bin {
		t.Errorf("browser path = %q, want explicit %q", report.Browser.Path, bin)
	}
}

func TestRun_DoctorMode(t *testing.T) {
	fakeBrowserOnPath(t)

	env, stdout, _ := testEnv("")
	if err := runCLI(t, env, "--doctor"); err != nil {
		t.Fatalf("run(--doctor) error: %v", err)
	}
	if !strings.Contains(stdout.String(), "mdtopdf doctor") {
		t.Errorf("doctor output missing header:\n%s", stdout.String())
	}
}

// Help still wins over doctor.
func TestRun_HelpWinsOverDoctor(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	env, stdout, _ := testEnv("")
	if err := runCLI(t, env, "-h", "--doctor"); err != nil {
		t.Fatalf("run(-h --doctor) error: %v", err)
	}
	if !strings.Contains(stdout.String(), "usage: mdtopdf") {
		t.Errorf("expected help output, got:\n%s", stdout.String())
	}
}
