package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mgpai22/minutebook/internal/config"
	"github.com/mgpai22/minutebook/internal/logging"
	"github.com/mgpai22/minutebook/internal/subtitle"
	"github.com/spf13/cobra"
)

// flag values and the settings resolved from them plus the config file
type app struct {
	verbose    bool
	configPath string
	output     string
	clipboard  bool

	logger *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "minutebook [file ...]",
		Short: "Group subtitle transcripts into minute-indexed paragraphs",
		Long: `Minutebook reads timestamped subtitle transcripts and prints one
paragraph per minute, labelled [MM], in ascending minute order.

Two entry styles are recognized:
  [MM:SS.mmm --> MM:SS.mmm] text          whisper style, one line per entry
  HH:MM:SS,mmm --> HH:MM:SS,mmm           SRT/VTT style, text on following
  text lines...                           lines until a blank line

Unrecognized lines are ignored. With no files, or with "-", the transcript
is read from standard input.

Examples:
  minutebook talk.txt
  minutebook part1.srt part2.srt -o minutes.txt
  cat talk.txt | minutebook --clipboard`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: a.runTransform,
	}

	rootCmd.PersistentFlags().
		BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&a.configPath, "config", "", "Config file path (or set "+config.EnvConfigPath+")")
	rootCmd.Flags().
		StringVarP(&a.output, "output", "o", "", "Output file path (default stdout)")
	rootCmd.Flags().
		BoolVar(&a.clipboard, "clipboard", false, "Also copy the output to the clipboard")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newInspectCmd(a), newLicenseCmd())
	return rootCmd
}

func Execute() error {
	return newRootCmd().Execute()
}

// setup merges the config file under explicitly set flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("verbose") {
		a.verbose = cfg.Verbose
	}
	if flags.Lookup("output") != nil && !flags.Changed("output") {
		a.output = cfg.Output
	}
	if flags.Lookup("clipboard") != nil && !flags.Changed("clipboard") {
		a.clipboard = cfg.Clipboard
	}

	a.logger = logging.New(cmd.ErrOrStderr(), a.verbose)
	if cfg.Path() != "" {
		a.logger.Debugw("Loaded config", "path", cfg.Path())
	}
	return nil
}

func (a *app) runTransform(cmd *cobra.Command, args []string) error {
	sources := resolveSources(args)

	// stdout receives each result as soon as it is ready
	var collected strings.Builder
	var w io.Writer = &collected
	if a.output == "" {
		w = io.MultiWriter(cmd.OutOrStdout(), &collected)
	}

	for i, source := range sources {
		text, err := a.readSource(cmd, source)
		if err != nil {
			return err
		}

		entries := subtitle.Parse(text)
		groups := subtitle.Group(entries)
		result := subtitle.Render(groups)

		a.logger.Infow("Transformed source",
			"source", displayName(source),
			"entries", len(entries),
			"minutes", len(groups),
		)

		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, result)
	}

	if a.output != "" {
		if err := subtitle.WriteOutput(a.output, collected.String()); err != nil {
			return err
		}
		a.logger.Infow("Wrote output", "path", a.output)
	}

	if a.clipboard {
		if err := copyToClipboard(collected.String()); err != nil {
			return err
		}
		a.logger.Infow("Copied output to clipboard")
	}

	return nil
}

func (a *app) readSource(cmd *cobra.Command, source string) (string, error) {
	if source != subtitle.StdinName {
		return subtitle.Open(source)
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		a.logger.Warnw("Reading transcript from terminal, end input with Ctrl-D")
	}
	text, err := subtitle.ReadSource(in)
	if err != nil {
		return "", fmt.Errorf("stdin: %w", err)
	}
	return text, nil
}

// no arguments means a single stdin source
func resolveSources(args []string) []string {
	if len(args) == 0 {
		return []string{subtitle.StdinName}
	}
	return args
}

func displayName(source string) string {
	if source == subtitle.StdinName {
		return "stdin"
	}
	return source
}
