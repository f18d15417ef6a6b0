package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	mdtopdf "github.com/mdtopdf/mdtopdf"
	"github.com/mdtopdf/mdtopdf/internal/fileutil"
	"github.com/mdtopdf/mdtopdf/internal/hints"
)

// errNotReady reports an environment in which PDF export would fail.
var errNotReady = errors.New("environment not ready for PDF export")

// doctorReport holds environment diagnostics.
type doctorReport struct {
	Status   string        `json:"status"` // "ready", "warnings", "errors"
	Browser  browserStatus `json:"browser"`
	Env      envStatus     `json:"environment"`
	System   systemStatus  `json:"system"`
	Warnings []string      `json:"warnings,omitempty"`
	Errors   []string      `json:"errors,omitempty"`
}

type browserStatus struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

type envStatus struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	Container  bool   `json:"container"`
	CI         bool   `json:"ci"`
	BrowserEnv string `json:"mdtopdf_browser,omitempty"`
}

type systemStatus struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctor checks the environment a conversion would need and writes a
// report. Returns errNotReady when export would fail (no browser found,
// temp directory not writable).
func runDoctor(w io.Writer, browser string, asJSON bool) error {
	report := collectDiagnostics(browser)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printDoctorReport(w, report)
	}

	if report.Status == "errors" {
		return errNotReady
	}
	return nil
}

// collectDiagnostics runs all checks and aggregates the result status.
func collectDiagnostics(browser string) *doctorReport {
	report := &doctorReport{
		Status: "ready",
		Env: envStatus{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			Container:  hints.IsInContainer(),
			CI:         os.Getenv("CI") != "",
			BrowserEnv: os.Getenv(mdtopdf.BrowserEnvVar),
		},
	}

	checkBrowser(report, browser)
	checkTempDir(report)

	if report.Env.Container || report.Env.CI {
		report.Warnings = append(report.Warnings,
			"container or CI detected; the browser sandbox will be disabled")
	}

	switch {
	case len(report.Errors) > 0:
		report.Status = "errors"
	case len(report.Warnings) > 0:
		report.Status = "warnings"
	}
	return report
}

// checkBrowser resolves the browser the same way a conversion would and
// records its version when the binary answers --version.
func checkBrowser(report *doctorReport, browser string) {
	path, err := mdtopdf.FindBrowser(browser)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		return
	}
	report.Browser.Found = true
	report.Browser.Path = path

	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- resolved browser binary
	if err != nil {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("could not read browser version: %v", err))
		return
	}
	report.Browser.Version = strings.TrimSpace(string(out))
}

// checkTempDir verifies the export staging directory can be created.
func checkTempDir(report *doctorReport) {
	_, cleanup, err := fileutil.TempDir("mdtopdf-doctor-")
	if err != nil {
		report.Errors = append(report.Errors,
			fmt.Sprintf("temp directory not writable: %v", err))
		return
	}
	cleanup()
	report.System.TempWritable = true
}

// printDoctorReport writes the human-readable report.
func printDoctorReport(w io.Writer, r *doctorReport) {
	fmt.Fprintln(w, "mdtopdf doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Browser")
	if r.Browser.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Browser.Path)
		if r.Browser.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Browser.Version)
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.BrowserEnv != "" {
		fmt.Fprintf(w, "  [OK] %s=%s\n", mdtopdf.BrowserEnvVar, r.Env.BrowserEnv)
	}
	if r.Env.Container {
		fmt.Fprintln(w, "  [OK] Container: detected")
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "  [WARN] %s\n", warn)
	}
	for _, msg := range r.Errors {
		fmt.Fprintf(w, "  [ERROR] %s\n", msg)
	}
	if len(r.Warnings)+len(r.Errors) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Status: %s\n", r.Status)
}
