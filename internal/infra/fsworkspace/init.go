package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/devshop/devapp/internal/domain"
	"github.com/devshop/devapp/internal/infra/workspacefinder"
)

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

// Init creates devapp.yaml and the log directory under spec.Root. An existing
// devapp.yaml is kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	cfg := domain.DefaultConfig()
	if spec.Target != "" {
		cfg.Defaults.Target = spec.Target
	}

	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(cfg.Logging.Dir)), 0o755); err != nil {
		return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindExecution, Path: root, Err: err}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindExecution, Path: root, Err: err}
	}

	dst := filepath.Join(root, workspacefinder.ConfigFile)
	if !force {
		if _, statErr := os.Stat(dst); statErr == nil {
			return nil
		}
	}

	b, err := workspacefinder.MarshalConfig(cfg)
	if err != nil {
		return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	return nil
}

func ensureGitignore(root string) error {
	const header = "# devapp"
	entries := []string{
		".devapp/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
