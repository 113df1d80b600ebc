package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/evgfitil/cbsub/internal/clipboard"
	"github.com/evgfitil/cbsub/internal/config"
	"github.com/evgfitil/cbsub/internal/document"
	"github.com/evgfitil/cbsub/internal/form"
	"github.com/evgfitil/cbsub/internal/guard"
	"github.com/evgfitil/cbsub/internal/logging"
	"github.com/evgfitil/cbsub/internal/picker"
	"github.com/evgfitil/cbsub/internal/template"
	"github.com/evgfitil/cbsub/internal/values"
)

const ExitCodeCancelled = 130

var (
	Version    = "dev"
	opts       options
	verbose    bool
	showConfig bool
)

// ErrCancelled indicates user cancelled the operation.
var ErrCancelled = errors.New("operation cancelled")

var rootCmd = &cobra.Command{
	Use:   "cbsub [file] [value]",
	Short: "Fill {{variables}} in a prompt file and copy it to the clipboard",
	Long: `cbsub substitutes {{variable}} placeholders in a prompt file and copies the
result to the clipboard.

Values come either from -s key=value flags (and -f values files) or, when the
file has exactly one variable, from a single positional value. Variable names
are case-insensitive. Placeholders without a value are left as they are.

Use "-" as the file to read from stdin. Without a file, piped stdin is used if
present; otherwise a picker opens over the prompts directory.`,
	Example: `  cbsub review.md -s code=1234 -s name=Alice
  cbsub greeting.md Alice
  cbsub review.md -l
  cat prompt.txt | cbsub -p -s name=Alice`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(2),
	RunE:          run,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().StringArrayVarP(&opts.substitutions, "substitution", "s", nil, "substitute a variable in key=value format (repeatable)")
	rootCmd.Flags().StringVarP(&opts.valuesFile, "values", "f", "", "read key: value substitutions from a YAML file")
	rootCmd.Flags().BoolVarP(&opts.preview, "preview", "p", false, "print the processed text instead of copying it")
	rootCmd.Flags().BoolVarP(&opts.list, "list", "l", false, "list the variables found in the prompt file")
	rootCmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "ask for values of variables that have none")
	rootCmd.Flags().BoolVar(&opts.force, "force", false, "copy even if the output looks like it contains secrets")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug information to stderr")
	rootCmd.Flags().BoolVar(&showConfig, "config", false, "show config file path")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	if showConfig {
		fmt.Fprintln(cmd.OutOrStdout(), config.Path())
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	r := &runner{
		opts:    opts,
		cfg:     cfg,
		stdin:   os.Stdin,
		stdout:  cmd.OutOrStdout(),
		stderr:  cmd.ErrOrStderr(),
		logger:  newLogger(cmd.ErrOrStderr(), cfg.Log.Level, verbose),
		newSink: clipboard.New,
		pick:    picker.Pick,
		fill: func(names []string) (template.Mapping, error) {
			return form.Run(names, form.DefaultTheme())
		},
		styled: isTerminal(os.Stdout),
	}
	return r.run(args)
}

func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		lvl = slog.LevelWarn
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return logging.New(w, lvl)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type options struct {
	substitutions []string
	valuesFile    string
	preview       bool
	list          bool
	interactive   bool
	force         bool
}

// runner carries one invocation's collaborators so tests can replace them.
type runner struct {
	opts    options
	cfg     *config.Config
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
	newSink func(command string) (clipboard.Sink, error)
	pick    func(dir string) (string, error)
	fill    func(names []string) (template.Mapping, error)
	styled  bool
}

func (r *runner) run(args []string) error {
	reader := document.New(r.stdin)

	path, err := r.resolvePath(args, reader)
	if err != nil {
		return err
	}

	text, err := reader.Read(path)
	if err != nil {
		return err
	}

	vars := template.Extract(text)
	r.logger.Debug("document loaded",
		slog.String("path", path),
		slog.Int("bytes", len(text)),
		slog.Int("variables", len(vars)),
	)

	if r.opts.list {
		printVariables(r.stdout, vars, r.styled)
		return nil
	}

	keyed, err := r.keyedEntries()
	if err != nil {
		return err
	}

	var positional *string
	if len(args) == 2 {
		positional = &args[1]
	}

	mapping, err := template.Reconcile(vars, keyed, positional)
	if err != nil {
		return err
	}

	if r.opts.interactive {
		if mapping, err = r.fillMissing(vars, mapping); err != nil {
			return err
		}
	}

	r.logger.Debug("substitutions resolved",
		slog.Int("mapped", len(mapping)),
		slog.Any("unmapped", mapping.Missing(vars)),
	)

	if len(mapping) == 0 {
		if len(vars) > 0 {
			printVariables(r.stdout, vars, r.styled)
			return nil
		}
		return r.deliver(text, "File content copied to clipboard.")
	}

	return r.deliver(template.Process(text, mapping), "Processed content copied to clipboard.")
}

// resolvePath picks the document: the file argument, piped stdin, or a
// prompt chosen from the prompts directory.
func (r *runner) resolvePath(args []string, reader *document.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if reader.IsPiped() {
		return document.StdinPath, nil
	}

	path, err := r.pick(r.cfg.PromptsDir)
	if err != nil {
		if errors.Is(err, picker.ErrAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("no prompt file given: %w", err)
	}
	return path, nil
}

// keyedEntries merges the values file with -s flags; flags win.
func (r *runner) keyedEntries() (template.Mapping, error) {
	keyed := template.Mapping{}
	if r.opts.valuesFile != "" {
		fromFile, err := values.Load(r.opts.valuesFile)
		if err != nil {
			return nil, err
		}
		for k, v := range fromFile {
			keyed[k] = v
		}
	}

	fromFlags, err := template.ParseEntries(r.opts.substitutions)
	if err != nil {
		return nil, err
	}
	for k, v := range fromFlags {
		keyed[k] = v
	}
	return keyed, nil
}

func (r *runner) fillMissing(vars template.VariableSet, mapping template.Mapping) (template.Mapping, error) {
	missing := mapping.Missing(vars)
	if len(missing) == 0 {
		return mapping, nil
	}

	filled, err := r.fill(missing)
	if err != nil {
		if errors.Is(err, form.ErrCancelled) {
			return nil, ErrCancelled
		}
		return nil, err
	}

	merged := make(template.Mapping, len(mapping)+len(filled))
	for k, v := range mapping {
		merged[k] = v
	}
	for k, v := range filled {
		merged[k] = v
	}
	return merged, nil
}

// deliver prints text in preview mode, otherwise checks it for secrets and
// copies it to the clipboard.
func (r *runner) deliver(text, done string) error {
	if r.opts.preview || r.cfg.Preview {
		fmt.Fprintln(r.stdout, text)
		return nil
	}

	findings, err := guard.New().Check(text, r.cfg.Guard.Block && !r.opts.force)
	if err != nil {
		return err
	}
	for _, f := range findings {
		r.logger.Warn("output may contain a secret",
			slog.String("rule", f.RuleID),
			slog.Int("line", f.Line),
		)
	}

	sink, err := r.newSink(r.cfg.Clipboard.Command)
	if err != nil {
		return err
	}
	r.logger.Debug("copying to clipboard", slog.String("sink", clipboard.Describe(sink)))

	if err := sink.Copy(text); err != nil {
		return err
	}
	fmt.Fprintln(r.stderr, done)
	return nil
}
