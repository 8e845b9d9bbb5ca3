// Package main provides the college bot CLI entrypoint.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/campusassist/collegebot/internal/config"
	"github.com/campusassist/collegebot/internal/dataset"
	"github.com/campusassist/collegebot/internal/nlp"
	"github.com/campusassist/collegebot/internal/observability"
	"github.com/campusassist/collegebot/internal/query"
)

const version = "0.3.0"

var (
	// Global flags
	cfgFile string
	verbose bool

	// Configuration and logger
	cfg    *config.Config
	logger *observability.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "collegebot-cli",
	Short: "College bot CLI for querying college information",
	Long: `College bot CLI answers natural-language questions about colleges:
admission criteria, course durations, entrance exams, fees and locations.

Use "ask" for a one-shot question or "chat" for an interactive session.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := cfg.Observability.LogLevel
		if !verbose {
			level = "error"
		}

		logger = observability.NewLogger(observability.LogConfig{
			Level:       level,
			Format:      "console",
			ServiceName: "collegebot-cli",
		})

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: uses env vars)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newCollegesCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newAskCmd creates the ask subcommand.
func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question and print the answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			router, _, err := buildPipeline()
			if err != nil {
				return err
			}

			question := strings.Join(args, " ")
			resp, err := router.Answer(context.Background(), question)
			if err != nil {
				return fmt.Errorf("answer query: %w", err)
			}

			fmt.Println(resp.Text)
			return nil
		},
	}
}

// newChatCmd creates the interactive chat subcommand.
func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			spin := NewSpinner("Loading dataset...")
			spin.Start()
			router, ix, err := buildPipeline()
			spin.Stop()
			if err != nil {
				return err
			}

			Success("Loaded %d colleges. Ask away! (type \"exit\" to quit)", ix.Len())

			scanner := bufio.NewScanner(os.Stdin)
			for {
				Prompt("you> ")
				if !scanner.Scan() {
					break
				}
				question := strings.TrimSpace(scanner.Text())
				if question == "" {
					continue
				}
				if question == "exit" || question == "quit" {
					break
				}

				resp, err := router.Answer(context.Background(), question)
				if err != nil {
					Error("%v", err)
					continue
				}

				fmt.Println(resp.Text)
				if resp.Text == query.Fallback {
					if sugg := nlp.Suggest(question, ix.CollegeNames(), 3); len(sugg) > 0 {
						Warning("Did you mean: %s?", strings.Join(sugg, ", "))
					}
				}
			}

			Success("Goodbye!")
			return scanner.Err()
		},
	}
}

// newCollegesCmd creates the colleges listing subcommand.
func newCollegesCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "colleges",
		Short: "List the colleges in the dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ix, err := buildPipeline()
			if err != nil {
				return err
			}

			recs := ix.Records()
			if location != "" {
				recs = ix.FilterByLocation(location)
			}
			if len(recs) == 0 {
				Warning("No colleges found")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Name", "City", "State", "Courses", "Course Fee"})
			for _, rec := range recs {
				table.Append([]string{rec.Name, rec.City, rec.State, rec.CoursesOffered, rec.CourseFee})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "filter by city or state")
	return cmd
}

// newVersionCmd creates the version subcommand.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("collegebot-cli %s\n", version)
		},
	}
}

// buildPipeline loads the dataset and wires the query router. The CLI
// answers locally, so no answer cache is attached.
func buildPipeline() (*query.Router, *dataset.Index, error) {
	var src dataset.Source
	if cfg.Dataset.Format == "sqlite" {
		src = dataset.NewSQLiteSource(cfg.Dataset.Path, cfg.Dataset.Table)
	} else {
		src = dataset.NewCSVSource(cfg.Dataset.Path)
	}

	ix, err := dataset.Load(src)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}

	extractor := query.NewExtractor(ix, nlp.NewLevenshteinMatcher(cfg.Matcher.Threshold))
	router := query.NewRouter(logger, ix, extractor, nil, query.RouterConfig{})
	return router, ix, nil
}
