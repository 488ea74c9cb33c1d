package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgpai22/minutebook/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestRootReadsStdin(t *testing.T) {
	stdin := "[00:00.000 --> 00:22.440]  Hello world\n"

	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "dash argument", args: []string{"-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, stdin, tt.args...)
			if err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			if stdout != "[00]\nHello world\n" {
				t.Errorf("unexpected output %q", stdout)
			}
		})
	}
}

func TestRootEmptyInputPrintsBlankLine(t *testing.T) {
	stdout, _, err := execute(t, "nothing to see\n")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if stdout != "\n" {
		t.Errorf("expected a single newline, got %q", stdout)
	}
}

func TestRootMultipleFiles(t *testing.T) {
	tmpDir := t.TempDir()
	first := writeFile(t, tmpDir, "first.srt", "00:00:00,000 --> 00:00:05,000\nHello\nworld\n\n00:01:10,000 --> 00:01:15,000\nNext minute\n")
	second := writeFile(t, tmpDir, "second.txt", "[02:00.000 --> 02:03.000] Other file\n")

	stdout, _, err := execute(t, "", first, second)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	want := "[00]\nHello world\n\n[01]\nNext minute\n\n[02]\nOther file\n"
	if stdout != want {
		t.Errorf("expected %q, got %q", want, stdout)
	}
}

func TestRootSameFileTwice(t *testing.T) {
	path := writeFile(t, t.TempDir(), "talk.txt", "[00:00.000 --> 00:01.000] again\n")

	stdout, _, err := execute(t, "", path, path)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	want := "[00]\nagain\n\n[00]\nagain\n"
	if stdout != want {
		t.Errorf("expected %q, got %q", want, stdout)
	}
}

func TestRootMissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	good := writeFile(t, tmpDir, "good.txt", "[00:00.000 --> 00:01.000] printed\n")
	missing := filepath.Join(tmpDir, "missing.srt")

	stdout, _, err := execute(t, "", good, missing)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got: %v", err)
	}
	if ExitCodeFor(err) != ExitIO {
		t.Errorf("expected exit code %d, got %d", ExitIO, ExitCodeFor(err))
	}
	// inputs before the failure are already printed
	if stdout != "[00]\nprinted\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestRootOutputFile(t *testing.T) {
	tmpDir := t.TempDir()
	input := writeFile(t, tmpDir, "talk.txt", "[05:00.000 --> 05:01.000] to file\n")
	outPath := filepath.Join(tmpDir, "out", "minutes.txt")

	stdout, _, err := execute(t, "", input, "-o", outPath)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if stdout != "" {
		t.Errorf("expected nothing on stdout, got %q", stdout)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "[05]\nto file\n" {
		t.Errorf("unexpected file content %q", data)
	}
}

func TestRootClipboard(t *testing.T) {
	var copied string
	original := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	defer func() { writeClipboard = original }()

	stdout, _, err := execute(t, "[00:00.000 --> 00:01.000] copy me\n", "--clipboard")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if copied != stdout {
		t.Errorf("expected clipboard %q to equal stdout %q", copied, stdout)
	}
}

func TestRootClipboardFailure(t *testing.T) {
	original := writeClipboard
	writeClipboard = func(string) error {
		return errors.New("no clipboard utility")
	}
	defer func() { writeClipboard = original }()

	_, _, err := execute(t, "[00:00.000 --> 00:01.000] x\n", "--clipboard")
	if !errors.Is(err, ErrClipboard) {
		t.Errorf("expected ErrClipboard, got: %v", err)
	}
	if ExitCodeFor(err) != ExitGeneral {
		t.Errorf("expected exit code %d, got %d", ExitGeneral, ExitCodeFor(err))
	}
}

func TestRootConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "from-config.txt")
	cfgPath := writeFile(t, tmpDir, "minutebook.yaml", "output: "+outPath+"\nverbose: true\n")

	stdout, stderr, err := execute(t, "[01:00.000 --> 01:01.000] configured\n", "--config", cfgPath)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if stdout != "" {
		t.Errorf("expected output redirected by config, got %q", stdout)
	}
	if !strings.Contains(stderr, "Transformed source") {
		t.Errorf("expected verbose log from config, got %q", stderr)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "[01]\nconfigured\n" {
		t.Errorf("unexpected file content %q", data)
	}
}

func TestRootFlagOverridesConfig(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := writeFile(t, tmpDir, "minutebook.yaml", "verbose: true\n")

	_, stderr, err := execute(t, "[01:00.000 --> 01:01.000] quiet\n", "--config", cfgPath, "--verbose=false")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if strings.Contains(stderr, "Transformed source") {
		t.Errorf("expected --verbose=false to win over config, got %q", stderr)
	}
}

func TestRootMissingConfig(t *testing.T) {
	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got: %v", err)
	}
	if ExitCodeFor(err) != ExitUsage {
		t.Errorf("expected exit code %d, got %d", ExitUsage, ExitCodeFor(err))
	}
}

func TestRootUnknownFlag(t *testing.T) {
	_, _, err := execute(t, "", "--no-such-flag")
	if !errors.Is(err, ErrUsage) {
		t.Errorf("expected ErrUsage, got: %v", err)
	}
	if ExitCodeFor(err) != ExitUsage {
		t.Errorf("expected exit code %d, got %d", ExitUsage, ExitCodeFor(err))
	}
}

func TestLicenseCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "license")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(stdout, "MIT License") {
		t.Errorf("expected license text, got %q", stdout)
	}
}
