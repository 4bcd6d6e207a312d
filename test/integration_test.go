// ABOUTME: Integration tests for teampulse CLI.
// ABOUTME: Tests full workflow from CSV file to rendered reports.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/teampulse/internal/models"
	"github.com/harperreed/teampulse/internal/parser"
	"github.com/harperreed/teampulse/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterCSV = `Date,First Name,Last Name,Recovery,HRV,Strain,Sleep Performance,RHR
2024-02-26,Jo,Doe,55,48,15.0,65,59
2024-03-04,Jo,Doe,60,54,14.1,70,58
2024-03-11,Jo,Doe,75,60,10.5,80,55
2024-03-11,Amy,Lee,90,61,8.2,90,49
`

func TestPipeline(t *testing.T) {
	set, err := parser.Parse(rosterCSV)
	require.NoError(t, err)
	require.Equal(t, 4, set.Len())

	rep := report.Build(set, report.DefaultSession())

	// Summary covers every metric in the file.
	rec := rep.Summary[models.MetricRecovery]
	assert.Equal(t, 70.0, rec.Avg)
	assert.Equal(t, 4, rec.Count)

	// One trend point per distinct date.
	require.Len(t, rep.Daily, 3)
	assert.Equal(t, "2024-02-26", rep.Daily[0].Date)

	// Rollups ordered by recovery, best first; the HRV trend comes
	// from the full history even though the report window is 7 days.
	require.Len(t, rep.Athletes, 2)
	assert.Equal(t, "Amy Lee", rep.Athletes[0].AthleteID)
	jo := rep.Athletes[1]
	assert.Equal(t, 3, jo.Sessions)
	assert.Equal(t, models.TrendRising, jo.HRVTrend[report.TrendWeeks-1])

	// The 7-day window keeps only 2024-03-04 onward.
	require.Len(t, rep.WindowAthletes, 2)
	for _, r := range rep.WindowAthletes {
		if r.AthleteID == "Jo Doe" {
			assert.Equal(t, 2, r.Sessions)
		}
	}
}

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "teampulse-test")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/teampulse")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Write the roster export to a temp file
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "team.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(rosterCSV), 0600))

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--file", csvPath}, args...)
		cmd := exec.Command(binary, fullArgs...)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Test summary
	output, err := run("summary")
	if err != nil {
		t.Fatalf("Failed to run summary: %v\n%s", err, output)
	}
	if !strings.Contains(output, "recovery") {
		t.Errorf("Expected 'recovery' in summary output, got: %s", output)
	}

	// Test trends
	output, err = run("trends")
	if err != nil {
		t.Fatalf("Failed to run trends: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2024-03-11") {
		t.Errorf("Expected latest date in trends output, got: %s", output)
	}

	// Test athletes
	output, err = run("athletes")
	if err != nil {
		t.Fatalf("Failed to run athletes: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Jo Doe") || !strings.Contains(output, "Amy Lee") {
		t.Errorf("Expected both athletes in output, got: %s", output)
	}

	// Test athlete filter rejects unknown names
	output, err = run("summary", "--athlete", "Nobody Here")
	if err == nil {
		t.Errorf("Expected unknown athlete to fail, got: %s", output)
	}

	// Test export to file
	outPath := filepath.Join(tmpDir, "report.md")
	output, err = run("export", "markdown", "-o", outPath)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	exported, err := os.ReadFile(outPath)
	require.NoError(t, err)
	if !strings.Contains(string(exported), "## Athletes") {
		t.Errorf("Expected athletes table in markdown export, got: %s", exported)
	}

	// Test malformed input surfaces a user-visible message
	badPath := filepath.Join(tmpDir, "empty.csv")
	require.NoError(t, os.WriteFile(badPath, []byte("\n\n"), 0600))
	cmd := exec.Command(binary, "--file", badPath, "summary")
	combined, err := cmd.CombinedOutput()
	if err == nil {
		t.Errorf("Expected empty file to fail, got: %s", combined)
	}
	if !strings.Contains(string(combined), "insufficient data") {
		t.Errorf("Expected 'insufficient data' message, got: %s", combined)
	}
}
