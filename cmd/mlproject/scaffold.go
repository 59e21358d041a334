package main

import (
	"fmt"

	"github.com/mlproject/mlproject/internal/logger"
	"github.com/mlproject/mlproject/internal/scaffold"
	"github.com/spf13/cobra"
)

func newScaffoldCmd(a *app) *cobra.Command {
	var (
		root    string
		gitInit bool
	)

	cmd := &cobra.Command{
		Use:   "scaffold [project-name]",
		Short: "Create the empty directory and file skeleton of a new project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context())

			projectName := a.cfg.Scaffold.ProjectName
			if len(args) == 1 {
				projectName = args[0]
			}
			if err := scaffold.ValidateProjectName(projectName); err != nil {
				return err
			}

			log.With("project", projectName, "root", root).Info("scaffolding project")
			report, err := scaffold.NewGenerator(a.files, log).Generate(cmd.Context(), root, projectName, a.cfg.Scaffold.Files)
			if err != nil {
				return fmt.Errorf("error occurred scaffolding project: %w", err)
			}

			if gitInit || a.cfg.Scaffold.GitInit {
				if err := scaffold.NewGitInitializer(log).Init(cmd.Context(), root); err != nil {
					return err
				}
			}

			log.With("created", len(report.Created), "skipped", len(report.Skipped)).Info("project scaffolded")
			for _, f := range report.Created {
				fmt.Fprintln(cmd.OutOrStdout(), "created", f)
			}
			for _, f := range report.Skipped {
				fmt.Fprintln(cmd.OutOrStdout(), "kept", f)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "directory the skeleton is created in")
	cmd.Flags().BoolVar(&gitInit, "git-init", false, "run git init after scaffolding")

	return cmd
}
