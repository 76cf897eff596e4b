package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/philipp01105/taglog/config"
	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/formatter"
	"github.com/philipp01105/taglog/logger"
	"github.com/philipp01105/taglog/sink"
)

const (
	appName  = "taglog"
	appShort = "taglog writes tagged, leveled and colored log lines"
	appLong  = `taglog writes log lines in the same format used on the devices:

	  <color><elapsed ms> [<level>] [<tag>] <message><reset>

	Defaults are read from the TAGLOG_LEVEL, TAGLOG_LINE_ENDING, TAGLOG_COLOR
	and TAGLOG_FILE environment variables and can be overridden with flags.`

	thresholdFlagName = "threshold"
	crlfFlagName      = "crlf"
	colorFlagName     = "color"
	fileFlagName      = "file"

	versionCmdName = "version"
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	threshold string
	crlf      bool
	color     string
	file      string
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.threshold, thresholdFlagName, "t", "", "override the threshold (none, error, warn, info, debug or a number)")
	flags.BoolVar(&f.crlf, crlfFlagName, false, "terminate lines with CRLF instead of LF")
	flags.StringVar(&f.color, colorFlagName, "", "color mode: auto, always or never")
	flags.StringVar(&f.file, fileFlagName, "", "also append lines, without colors, to this file")
}

// app carries the Logger built for the running command
type app struct {
	fs    afero.Fs
	log   *logger.Logger
	close func() error
}

// toConfig merges the environment configuration with the flags that were
// set explicitly on cmd.
func (f *rootFlags) toConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(thresholdFlagName) {
		cfg.Level = f.threshold
	}
	if flags.Changed(crlfFlagName) {
		cfg.LineEnding = config.LineEndingLF
		if f.crlf {
			cfg.LineEnding = config.LineEndingCRLF
		}
	}
	if flags.Changed(colorFlagName) {
		cfg.Color = f.color
	}
	if flags.Changed(fileFlagName) {
		cfg.File = f.file
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	cmd := rootCmd(afero.NewOsFs())

	exitCode := 0
	if err := cmd.Execute(); err != nil {
		diagnostics(cmd.ErrOrStderr()).Error(appName, "%s", err)
		exitCode = 1
	}

	os.Exit(exitCode)
}

// diagnostics returns the Logger used for the tool's own errors
func diagnostics(w io.Writer) *logger.Logger {
	color := sink.IsTerminal(w)
	if f, ok := w.(*os.File); ok {
		w = sink.Console(f)
	}
	return logger.NewBuilder().
		WithFormatter(formatter.NewLineFormatter(formatter.Config{DisableColor: !color})).
		WithOutputs(w).
		Build()
}

// rootCmd constructs the root Cobra command with shared configuration.
func rootCmd(fs afero.Fs) *cobra.Command {
	flag := &rootFlags{}
	a := &app{fs: fs}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),
		Long:  heredoc.Doc(appLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == versionCmdName {
				return nil
			}
			cfg, err := flag.toConfig(cmd)
			if err != nil {
				return err
			}
			a.log, a.close, err = cfg.Build(a.fs, cmd.OutOrStdout())
			return err
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.close == nil {
				return nil
			}
			return a.close()
		},
	}

	// main reports the error itself; only the usage is printed here
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd)
	cmd.AddCommand(
		emitCmd(a),
		pipeCmd(a),
		versionCmd(),
	)

	return cmd
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: "Display the " + appName + " version",

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(logger.Version, runtime.Version()))
		},
	}
}

// versionString formats the version metadata for display.
func versionString(version, runtimeVersion string) string {
	return appName + " " + version + ", Go Version: " + runtimeVersion
}

// parseLevel validates a per-line level flag
func parseLevel(s string) (core.Level, error) {
	level, err := core.ParseLevel(s)
	if err != nil {
		return core.NoneLevel, err
	}
	if !level.Valid() {
		return core.NoneLevel, fmt.Errorf("%w: %q is outside none..debug", core.ErrInvalidLevel, s)
	}
	return level, nil
}
