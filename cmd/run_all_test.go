package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunAll_ExportsOneFilePerQuery(t *testing.T) {
	home := isolateHome(t)
	data := writeDataset(t, home, sampleCSV)
	outDir := filepath.Join(home, "exports")

	out := runCmd(t, "run-all", "--data", data, "--output-dir", outDir)
	if !strings.Contains(out, "[1/11] Running smokers-hypertension-stroke...") ||
		!strings.Contains(out, "[11/11] Running sleep-hours...") {
		t.Fatalf("missing progress lines:\n%s", out)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 11 {
		t.Fatalf("expected 11 exports, got %d", len(entries))
	}

	var stats string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "descriptive-stats-") {
			stats = filepath.Join(outDir, e.Name())
		}
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
	if stats == "" {
		t.Fatalf("descriptive-stats export not found")
	}
	body, err := os.ReadFile(stats)
	if err != nil {
		t.Fatalf("read stats export: %v", err)
	}
	// --feature defaults to Age
	if !strings.HasPrefix(string(body), "Statistic,Value\nmean,") || !strings.Contains(string(body), "min,40\nmax,70\n") {
		t.Fatalf("unexpected stats export:\n%s", body)
	}
}

func TestRunAll_QuietUsesConfigExportDir(t *testing.T) {
	home := isolateHome(t)
	data := writeDataset(t, home, sampleCSV)
	outDir := filepath.Join(home, "from-config")

	runCmd(t, "config", "set", "export_dir", outDir)
	out := runCmd(t, "run-all", "--data", data, "--quiet", "-f", "Sleep Hours")
	if out != "" {
		t.Fatalf("expected no output with --quiet, got:\n%s", out)
	}
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 11 {
		t.Fatalf("expected 11 exports, got %d", len(entries))
	}
}
