package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DirName is the per-project state directory.
	DirName    = ".embedg"
	dbFileName = "embedg.db"
	pebbleDir  = "pebble"
	logName    = "embedg.log"
)

// ErrNotInitialized is returned when no .embedg directory is found.
var ErrNotInitialized = errors.New("not initialized. Run 'embedg init' first")

// Project represents an embedg project.
type Project struct {
	Root   string
	DBPath string
}

// Dir returns the .embedg directory.
func (p Project) Dir() string {
	return filepath.Dir(p.DBPath)
}

// PebblePath returns the directory used by the pebble slot backend.
func (p Project) PebblePath() string {
	return filepath.Join(p.Dir(), pebbleDir)
}

// LogPath returns the default log file location.
func (p Project) LogPath() string {
	return filepath.Join(p.Dir(), logName)
}

// DiscoverProject walks up from startDir to find a .embedg directory.
func DiscoverProject(startDir string) (Project, error) {
	current := startDir
	if current == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Project{}, err
		}
		current = cwd
	}
	current, err := filepath.Abs(current)
	if err != nil {
		return Project{}, err
	}

	for {
		dir := filepath.Join(current, DirName)
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return Project{Root: current, DBPath: filepath.Join(dir, dbFileName)}, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return Project{}, ErrNotInitialized
		}
		current = parent
	}
}

// InitProject initializes a new embedg project at dir.
func InitProject(dir string, force bool) (Project, error) {
	root := dir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Project{}, err
		}
		root = cwd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return Project{}, err
	}

	stateDir := filepath.Join(root, DirName)
	dbPath := filepath.Join(stateDir, dbFileName)

	if info, err := os.Stat(stateDir); err == nil && info.IsDir() && !force {
		return Project{}, fmt.Errorf("already initialized. Use --force to reinitialize")
	}

	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return Project{}, err
	}
	EnsureGitignore(stateDir)

	if force {
		if err := os.Remove(dbPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Project{}, err
		}
		if err := os.RemoveAll(filepath.Join(stateDir, pebbleDir)); err != nil {
			return Project{}, err
		}
	}

	return Project{Root: root, DBPath: dbPath}, nil
}

// EnsureGitignore ensures .embedg/.gitignore ignores local state.
func EnsureGitignore(stateDir string) {
	gitignore := filepath.Join(stateDir, ".gitignore")
	entries := []string{"*.db", "*.db-wal", "*.db-shm", "*.log", pebbleDir + "/"}

	data, err := os.ReadFile(gitignore)
	if err != nil {
		_ = os.WriteFile(gitignore, []byte(strings.Join(entries, "\n")+"\n"), 0o644)
		return
	}
	content := string(data)

	lines := map[string]bool{}
	for _, line := range strings.Split(content, "\n") {
		lines[strings.TrimSpace(line)] = true
	}

	missing := []string{}
	for _, entry := range entries {
		if !lines[entry] {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return
	}
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += strings.Join(missing, "\n") + "\n"
	_ = os.WriteFile(gitignore, []byte(content), 0o644)
}
