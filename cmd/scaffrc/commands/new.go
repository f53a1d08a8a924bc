package commands

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/scaffrc/cmd/scaffrc/opts"
	"github.com/walteh/scaffrc/pkg/answers"
	"github.com/walteh/scaffrc/pkg/config"
	"github.com/walteh/scaffrc/pkg/log"
	"github.com/walteh/scaffrc/pkg/scaffold"
	"github.com/walteh/scaffrc/pkg/template"
	"gitlab.com/tozd/go/errors"
)

// NewNewCmd creates the command that scaffolds a new project
func NewNewCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		projectName  string
		description  string
		answersFile  string
		templateRef  string
		asyncEntries bool
	)

	cmd := &cobra.Command{
		Use:   "new [destination]",
		Short: "Create a new project from the configured template",
		Long: `New materializes a project at the destination directory.
It will:
1. Resolve the template (local directory or github.com/owner/repo[@ref])
2. Copy the allow-listed entries, honoring the exclusion rules
3. Rewrite the project manifest with the new project's identity`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "new").Logger().WithContext(ctx)

			// Load config
			cfg, err := config.Load(ctx, rootOpts.ConfigFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			if templateRef != "" {
				cfg.Template = templateRef
			}
			if asyncEntries {
				cfg.Async = true
			}

			// Resolve destination
			destination := cfg.Destination
			if len(args) > 0 {
				destination = args[0]
			}
			if destination == "" {
				return errors.Errorf("destination is required (argument or config)")
			}
			destination, err = filepath.Abs(destination)
			if err != nil {
				return errors.Errorf("resolving destination path: %w", err)
			}

			// Collect answers without prompting
			a := &answers.ProjectAnswers{}
			if answersFile != "" {
				a, err = answers.Load(ctx, answersFile)
				if err != nil {
					return errors.Errorf("loading answers: %w", err)
				}
			}
			if projectName != "" {
				a.ProjectName = projectName
			}
			if cmd.Flags().Changed("description") {
				a.Description = description
			}

			// Resolve template source
			source, err := template.Resolve(ctx, cfg.Template)
			if err != nil {
				return errors.Errorf("resolving template: %w", err)
			}
			defer source.Close()

			templateRoot, err := source.Root(ctx)
			if err != nil {
				return errors.Errorf("materializing template: %w", err)
			}

			rootOpts.UserLogger.Header("creating " + filepath.Base(destination))

			// Run the scaffolding operations
			report := scaffold.NewReport()
			scaffoldOpts := scaffold.Options{
				Config:       cfg,
				Answers:      a,
				TemplateRoot: templateRoot,
				Destination:  destination,
				Report:       report,
			}

			runner := scaffold.NewRunner(zerolog.Ctx(ctx), cfg.Async)
			runErr := runner.Run(ctx,
				scaffold.NewCopyOperation(scaffoldOpts),
				scaffold.NewManifestOperation(scaffoldOpts),
			)

			renderReport(rootOpts.UserLogger, report)

			if runErr != nil {
				rootOpts.UserLogger.Errorf("scaffold incomplete: %v", runErr)
				return errors.Errorf("scaffolding project: %w", runErr)
			}

			if missing := report.Missing(); len(missing) > 0 {
				rootOpts.UserLogger.Warningf("%d template entries were missing", len(missing))
			}

			rootOpts.UserLogger.Successf("created %s", destination)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectName, "name", "n", "", "new project name")
	cmd.Flags().StringVar(&description, "description", "", "new project description")
	cmd.Flags().StringVar(&answersFile, "answers", "", "YAML answers file for scripted runs")
	cmd.Flags().StringVarP(&templateRef, "template", "t", "", "template directory or github.com/owner/repo[@ref]")
	cmd.Flags().BoolVar(&asyncEntries, "async", false, "run scaffolding operations concurrently")

	return cmd
}

// renderReport prints per-entry outcomes through the user logger
func renderReport(ul *log.UserLogger, report *scaffold.Report) {
	for _, entry := range report.Entries() {
		change := log.FileChange{Path: entry.Path, Error: entry.Err}
		switch entry.Status {
		case scaffold.StatusCopied:
			change.Type = log.FileCreated
		case scaffold.StatusTransformed:
			change.Type = log.FileTransformed
		case scaffold.StatusSkipped:
			change.Type = log.FileSkipped
			change.Description = "excluded by rule"
			change.Error = nil
		case scaffold.StatusMissing:
			change.Type = log.FileMissing
			change.Description = "missing in template"
			change.Error = nil
		case scaffold.StatusFailed:
			change.Type = log.FileFailed
		}
		ul.LogFileChange(change)
	}
}
