// Package scaffold lays out the empty file skeleton of a new ML project.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/mlproject/mlproject/internal/common"
	"github.com/mlproject/mlproject/internal/logger"
	"github.com/spf13/afero"
)

var (
	ErrInvalidProjectName = errors.New("invalid project name")
	ErrOutsideRoot        = errors.New("path escapes scaffold root")
)

type (
	// DirectoryCreator is satisfied by *common.Files.
	DirectoryCreator interface {
		CreateDirectories(paths []string, verbose bool) error
		Fs() afero.Fs
	}

	// Report lists the files touched by Generate, relative to the root.
	Report struct {
		Created []string
		Skipped []string
	}

	Generator struct {
		files  DirectoryCreator
		logger *slog.Logger
	}
)

func NewGenerator(files DirectoryCreator, log *slog.Logger) *Generator {
	return &Generator{
		files:  files,
		logger: logger.Named(log, "scaffold"),
	}
}

// Generate creates every entry of files below root. Entries are templates
// rendered with .ProjectName. A file is (re)created when it is missing or
// empty; files with content are left alone.
func (g *Generator) Generate(ctx context.Context, root, projectName string, files []string) (Report, error) {
	var report Report

	if err := ValidateProjectName(projectName); err != nil {
		return report, err
	}

	fs := g.files.Fs()
	for _, entry := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		rel, err := render(entry, projectName)
		if err != nil {
			return report, err
		}

		path, err := underRoot(root, rel)
		if err != nil {
			return report, err
		}
		dir, name := filepath.Split(path)
		if dir != "" {
			if err := g.files.CreateDirectories([]string{dir}, false); err != nil {
				return report, fmt.Errorf("failed to create directory for '%s': %w", rel, err)
			}
			g.logger.With("dir", filepath.Clean(dir), "file", name).Info("creating directory for file")
		}

		info, err := fs.Stat(path)
		switch {
		case err == nil && info.Size() > 0:
			g.logger.With("file", rel).Info("file already exists")
			report.Skipped = append(report.Skipped, rel)
			continue
		case err != nil && !os.IsNotExist(err):
			return report, fmt.Errorf("failed to stat '%s': %w", rel, err)
		}

		if err := touch(fs, path); err != nil {
			return report, fmt.Errorf("failed to create '%s': %w", rel, err)
		}
		g.logger.With("file", rel).Info("creating empty file")
		report.Created = append(report.Created, rel)
	}

	return report, nil
}

// ValidateProjectName rejects names that would place files outside the
// project's own directory once rendered into a path.
func ValidateProjectName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidProjectName)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: '%s' contains a path separator", ErrInvalidProjectName, name)
	case name == "." || strings.Contains(name, ".."):
		return fmt.Errorf("%w: '%s' is a relative path element", ErrInvalidProjectName, name)
	}
	return nil
}

// underRoot joins rel onto root and fails when the result leaves root.
func underRoot(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: '%s' is absolute", ErrOutsideRoot, rel)
	}

	path := filepath.Join(root, rel)
	back, err := filepath.Rel(filepath.Clean(root), path)
	if err != nil {
		return "", fmt.Errorf("%w: '%s': %v", ErrOutsideRoot, rel, err)
	}
	if back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: '%s'", ErrOutsideRoot, rel)
	}
	return path, nil
}

func render(entry, projectName string) (string, error) {
	tmpl, err := template.New("file").Option("missingkey=error").Parse(entry)
	if err != nil {
		return "", fmt.Errorf("failed to parse file entry '%s': %w", entry, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, struct{ ProjectName string }{projectName}); err != nil {
		return "", fmt.Errorf("failed to render file entry '%s': %w", entry, err)
	}

	return filepath.FromSlash(b.String()), nil
}

func touch(fs afero.Fs, path string) error {
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

var _ DirectoryCreator = (*common.Files)(nil)
