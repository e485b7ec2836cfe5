package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/devshop/devapp/internal/domain"
)

func newWorkspace(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "devapp.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// --- root command (demo) ---

func TestRoot_NoWorkspaceNoArgs(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, errOut, err := execute(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Code,Run, Faster\n" {
		t.Errorf("expected exactly the desktop line, got %q", out)
	}
	if errOut != "" {
		t.Errorf("expected no stderr output, got %q", errOut)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files written, got %d entries", len(entries))
	}
}

func TestRoot_NoWorkspaceDebugLogsUnderWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, _, err := execute(t, "--debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Code,Run, Faster\n" {
		t.Errorf("expected exactly the desktop line, got %q", out)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != ".devapp" {
		t.Fatalf("expected only .devapp/ to be created, got %v", entries)
	}
	if _, err := os.Stat(filepath.Join(dir, ".devapp", "logs", "devapp.log")); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}

func TestRoot_DebugWithoutWorkingDirFails(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("removing the working directory is only portable on linux")
	}
	dir := filepath.Join(t.TempDir(), "gone")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	if err := os.Remove(dir); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "--debug")
	if err == nil {
		t.Fatal("expected error when the working directory is gone")
	}
	if !strings.Contains(err.Error(), "working directory") {
		t.Errorf("expected working directory in error, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestRoot_DefaultPrintsDesktopLine(t *testing.T) {
	ws := newWorkspace(t, "devapp: {}\n")

	out, errOut, err := execute(t, "--workspace", ws)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Code,Run, Faster\n" {
		t.Errorf("expected exactly the desktop line, got %q", out)
	}
	if errOut != "" {
		t.Errorf("expected no stderr output, got %q", errOut)
	}
}

func TestRoot_TargetFlagLap(t *testing.T) {
	ws := newWorkspace(t, "devapp: {}\n")

	out, _, err := execute(t, "--workspace", ws, "--target", "lap")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Code,Run,Running...\n" {
		t.Errorf("expected lap line, got %q", out)
	}
}

func TestRoot_WorkspaceTarget(t *testing.T) {
	ws := newWorkspace(t, "devapp:\n  defaults:\n    target: lap\n")

	out, _, err := execute(t, "-w", ws)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Code,Run,Running...\n" {
		t.Errorf("expected lap line from workspace default, got %q", out)
	}
}

func TestRoot_FlagOverridesWorkspaceTarget(t *testing.T) {
	ws := newWorkspace(t, "devapp:\n  defaults:\n    target: lap\n")

	out, _, err := execute(t, "-w", ws, "-t", "desktop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Code,Run, Faster\n" {
		t.Errorf("expected desktop line, got %q", out)
	}
}

func TestRoot_DevTargetFails(t *testing.T) {
	ws := newWorkspace(t, "devapp: {}\n")

	out, errOut, err := execute(t, "-w", ws, "-t", "dev")
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindUnsupported) {
		t.Fatalf("expected KindUnsupported, got %v", err)
	}
	if !errors.Is(err, errors.ErrUnsupported) {
		t.Fatalf("expected errors.ErrUnsupported, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no stdout output, got %q", out)
	}
	if !strings.Contains(errOut, "unsupported") {
		t.Errorf("expected diagnostic on stderr, got %q", errOut)
	}
}

func TestRoot_UnknownTarget(t *testing.T) {
	ws := newWorkspace(t, "devapp: {}\n")

	_, _, err := execute(t, "-w", ws, "-t", "server")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestRoot_RejectsArgs(t *testing.T) {
	ws := newWorkspace(t, "devapp: {}\n")

	if _, _, err := execute(t, "-w", ws, "extra"); err == nil {
		t.Fatal("expected error for positional args")
	}
}

func TestRoot_ExplicitWorkspaceWithoutConfig(t *testing.T) {
	_, _, err := execute(t, "-w", t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestRoot_WritesLogIntoWorkspace(t *testing.T) {
	ws := newWorkspace(t, "devapp:\n  logging:\n    dir: logs\n")

	if _, _, err := execute(t, "-w", ws, "--debug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(ws, "logs", "devapp.log"))
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(b), "dev.app.start") {
		t.Errorf("expected dev.app.start in log, got:\n%s", b)
	}
}

// --- code ---

func TestCode_Machines(t *testing.T) {
	ws := newWorkspace(t, "devapp: {}\n")

	cases := []struct {
		machine string
		want    string
	}{
		{"lap", "Code,Run,Running...\n"},
		{"desktop", "Code,Run, Faster\n"},
	}
	for _, c := range cases {
		out, _, err := execute(t, "-w", ws, "code", c.machine)
		if err != nil {
			t.Fatalf("code %s: unexpected error: %v", c.machine, err)
		}
		if out != c.want {
			t.Errorf("code %s: got %q, want %q", c.machine, out, c.want)
		}
	}
}

func TestCode_DevFails(t *testing.T) {
	ws := newWorkspace(t, "devapp: {}\n")

	out, _, err := execute(t, "-w", ws, "code", "dev")
	if !domain.IsKind(err, domain.KindUnsupported) {
		t.Fatalf("expected KindUnsupported, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestCode_RequiresOneArg(t *testing.T) {
	ws := newWorkspace(t, "devapp: {}\n")

	if _, _, err := execute(t, "-w", ws, "code"); err == nil {
		t.Fatal("expected error without machine argument")
	}
}

// --- machines list ---

func TestMachinesList(t *testing.T) {
	ws := newWorkspace(t, "devapp:\n  defaults:\n    target: lap\n")

	out, _, err := execute(t, "-w", ws, "machines", "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Workspace: " + ws, "Default:   lap", "- desktop", "- dev", "- lap"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

// --- init ---

func TestInit_CreatesWorkspaceUsedByRoot(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "init", "--path", dir, "--target", "lap")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Workspace ready") {
		t.Errorf("expected confirmation, got %q", out)
	}

	out, _, err = execute(t, "-w", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Code,Run,Running...\n" {
		t.Errorf("expected lap line, got %q", out)
	}
}

func TestInit_UnknownTarget(t *testing.T) {
	_, _, err := execute(t, "init", "--path", t.TempDir(), "--target", "mainframe")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	for _, flag := range []string{"path", "target", "force"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on init command", flag)
		}
	}
}

func TestMachinesList_RejectsArgs(t *testing.T) {
	ws := newWorkspace(t, "devapp: {}\n")

	if _, _, err := execute(t, "-w", ws, "machines", "list", "junk"); err == nil {
		t.Fatal("expected error for positional args")
	}
}

// --- version ---

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "devapp ") {
		t.Errorf("expected version line, got %q", out)
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"version", "init", "machines", "code"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"workspace", "debug"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected --%s persistent flag", flag)
		}
	}
	if cmd.Flags().Lookup("target") == nil {
		t.Error("expected --target flag on root command")
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestResolveWorkspaceRoot_RelativePath(t *testing.T) {
	got, err := resolveWorkspaceRoot(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}
