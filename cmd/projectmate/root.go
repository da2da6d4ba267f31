package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"projectmate.net/internal/config"
	"projectmate.net/internal/logging"
	"projectmate.net/internal/models"
)

// app carries what every subcommand needs once the root has run
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var projectsFile string

	cmd := &cobra.Command{
		Use:           "projectmate",
		Short:         "Showcase developer projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.Load()
			logger, err := logging.New(a.cfg.Env, a.cfg.LogLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	cmd.PersistentFlags().StringVar(&projectsFile, "projects", "", "projects file (default <DATA_PATH>/projects.json)")

	load := func() (*models.ProjectList, error) {
		path := projectsFile
		if path == "" {
			path = a.cfg.ProjectsFile()
		}
		return config.LoadProjects(path)
	}

	cmd.AddCommand(
		newServeCmd(a, load),
		newCheckCmd(a, load),
	)
	return cmd
}
