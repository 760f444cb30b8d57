package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spindlewrit/spindlewrit/internal/cli"
	"github.com/spindlewrit/spindlewrit/internal/config"
	"github.com/spindlewrit/spindlewrit/internal/extract"
	"github.com/spindlewrit/spindlewrit/internal/project"
	"github.com/spindlewrit/spindlewrit/internal/scaffold"
)

var (
	fromTaskID        string
	fromTaskOutputDir string
	fromTaskAPIKey    string
	fromTaskOffline   bool
	fromTaskCommit    bool
)

var fromTaskCmd = &cobra.Command{
	Use:   "from-task",
	Short: "Create a project from a task in the task store",
	Long: `Create a project from a task using Gemma-powered suggestions.

The task record is fetched from the task store, handed to the Gemma
function-calling endpoint for structured extraction, and the result is
scaffolded under the output directory.

With --offline, a deterministic stand-in client is used instead: no
network access and no API key required.

Example:
  spindlewrit from-task --task-id 42 --output-dir ./work`,
	RunE: runFromTask,
}

func init() {
	fromTaskCmd.Flags().StringVar(&fromTaskID, "task-id", "", "ID of the task to use for project generation")
	fromTaskCmd.Flags().StringVar(&fromTaskOutputDir, "output-dir", "", "Directory where to create the project (defaults to current directory)")
	fromTaskCmd.Flags().StringVar(&fromTaskAPIKey, "api-key", "", "Gemma API key (defaults to GEMMA_API_KEY env variable)")
	fromTaskCmd.Flags().BoolVar(&fromTaskOffline, "offline", false, "Use the deterministic offline client (no API key required)")
	fromTaskCmd.Flags().BoolVar(&fromTaskCommit, "commit", false, "Record an initial git commit after scaffolding")
	_ = fromTaskCmd.MarkFlagRequired("task-id")
	rootCmd.AddCommand(fromTaskCmd)
}

func runFromTask(cmd *cobra.Command, args []string) error {
	printer := cli.NewPrinter(os.Stdout)

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	client, ok := buildExtractClient(printer, cfg)
	if !ok {
		os.Exit(1)
	}

	details, err := client.GenerateFromTask(cmd.Context(), fromTaskID)
	if err != nil {
		printer.Error("Error: " + err.Error())
		os.Exit(1)
	}

	outputDir := fromTaskOutputDir
	if outputDir == "" {
		outputDir, err = os.Getwd()
		if err != nil {
			return err
		}
	}

	spec, err := project.SpecFromDetails(details, outputDir)
	if err != nil {
		printer.Error("Error: " + err.Error())
		os.Exit(1)
	}

	generator := scaffold.New(scaffold.Options{Commit: fromTaskCommit})
	if !printer.Result(generator.Generate(*spec)) {
		os.Exit(1)
	}
	return nil
}

// buildExtractClient selects the extraction client. Environment reads happen
// here, at the process boundary; the clients themselves only see explicit
// configuration.
func buildExtractClient(printer *cli.Printer, cfg *config.Config) (extract.Client, bool) {
	if fromTaskOffline {
		printer.Notice("Using offline extraction client (no Gemma API calls)")
		return extract.NewOfflineClient(), true
	}

	key := fromTaskAPIKey
	if key == "" {
		key = os.Getenv("GEMMA_API_KEY")
	}
	if key == "" {
		printer.Error("Error: Gemma API key not provided. Use --api-key or set the GEMMA_API_KEY environment variable.")
		return nil, false
	}

	taskstoreURL := os.Getenv("TASKSTORE_URL")
	if taskstoreURL == "" {
		taskstoreURL = cfg.TaskstoreURL
	}

	return extract.NewGemmaClient(extract.Config{
		APIKey:       key,
		BaseURL:      cfg.GemmaBaseURL,
		Model:        cfg.Model,
		TaskstoreURL: taskstoreURL,
	}), true
}
