package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mlproject/mlproject/internal/logger"
)

// GitInitializer turns a freshly scaffolded directory into a git repository.
type GitInitializer struct {
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func NewGitInitializer(log *slog.Logger) *GitInitializer {
	return &GitInitializer{
		logger: logger.Named(log, "git"),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Init runs `git init` in dir unless it already holds a repository.
func (g *GitInitializer) Init(ctx context.Context, dir string) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		g.logger.With("path", dir).Info("repository already initialized, skipping")
		return nil
	}

	g.logger.With("path", dir).Info("initializing git repository")

	cmd := exec.CommandContext(ctx, "git", "init")
	cmd.Dir = dir
	cmd.Stdout = g.stdout
	cmd.Stderr = g.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git init failed: %w", err)
	}

	g.logger.With("path", dir).Info("git repository initialized")
	return nil
}
