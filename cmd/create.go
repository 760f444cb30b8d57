package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spindlewrit/spindlewrit/internal/cli"
	"github.com/spindlewrit/spindlewrit/internal/config"
	"github.com/spindlewrit/spindlewrit/internal/project"
	"github.com/spindlewrit/spindlewrit/internal/scaffold"
)

var (
	createName        string
	createDescription string
	createType        string
	createPath        string
	createCommit      bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	Long: `Create a new project skeleton with the given configuration.

The target directory is created if absent; generation is additive and
never removes pre-existing files.

Example:
  spindlewrit create --name my-tool --description "A CLI tool" --type python --path ./work`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Name of the project")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Short description of the project")
	createCmd.Flags().StringVar(&createType, "type", "python", "Project type (python, rust, common)")
	createCmd.Flags().StringVar(&createPath, "path", "", "Path where to create the project (defaults to current directory)")
	createCmd.Flags().BoolVar(&createCommit, "commit", false, "Record an initial git commit after scaffolding")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	rawKind := createType
	if !cmd.Flags().Changed("type") {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		rawKind = cfg.DefaultType
	}
	kind, err := project.ParseKind(rawKind)
	if err != nil {
		return err
	}

	path := createPath
	if path == "" {
		path, err = os.Getwd()
		if err != nil {
			return err
		}
	}

	spec := project.Spec{
		Name:        createName,
		Description: createDescription,
		Kind:        kind,
		Path:        path,
	}

	printer := cli.NewPrinter(os.Stdout)
	generator := scaffold.New(scaffold.Options{Commit: createCommit})
	if !printer.Result(generator.Generate(spec)) {
		os.Exit(1)
	}
	return nil
}
