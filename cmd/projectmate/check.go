package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"projectmate.net/internal/models"
	"projectmate.net/internal/services"
)

func newCheckCmd(a *app, load func() (*models.ProjectList, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report projects whose repository URL the stats action would reject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := load()
			if err != nil {
				return err
			}

			issues := services.NewProjectService(projects).AuditRepositories()
			out := cmd.OutOrStdout()
			for _, issue := range issues {
				fmt.Fprintf(out, "%s\t%s\t%s\n", issue.ProjectID, issue.Title, issue.URL)
			}
			if len(issues) > 0 {
				return fmt.Errorf("%d of %d projects have a malformed repository url", len(issues), len(projects.Projects))
			}
			fmt.Fprintf(out, "%d projects ok\n", len(projects.Projects))
			return nil
		},
	}
}
