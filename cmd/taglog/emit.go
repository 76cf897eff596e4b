package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	levelFlagName = "level"
	tagFlagName   = "tag"

	defaultLevel = "info"
	defaultTag   = "APP"

	emitCmdShort   = "write one log line"
	emitCmdExample = `# Write a warning tagged NET
	taglog emit --level warn --tag NET link down

	# Write to a serial console expecting CRLF
	taglog emit --crlf --tag BOOT firmware 1.2.0 started`

	pipeCmdShort = "write one log line per line read from stdin"
	pipeCmdLong  = `Read stdin line by line and write every non-empty line as a log
	line with the given level and tag.`
	pipeCmdExample = `# Tag the output of another program
	./sensor-dump | taglog pipe --tag SENSOR --level debug`
)

// lineFlags holds the per-line options shared by emit and pipe
type lineFlags struct {
	level string
	tag   string
}

func (f *lineFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.level, levelFlagName, "l", defaultLevel, "level of the line (none, error, warn, info, debug)")
	flags.StringVar(&f.tag, tagFlagName, defaultTag, "tag written between brackets")
}

// emitCmd returns the Cobra command that writes a single line.
func emitCmd(a *app) *cobra.Command {
	flags := &lineFlags{}
	cmd := &cobra.Command{
		Use:     "emit MESSAGE...",
		Short:   heredoc.Doc(emitCmdShort),
		Example: heredoc.Doc(emitCmdExample),

		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(_ *cobra.Command, args []string) error {
			level, err := parseLevel(flags.level)
			if err != nil {
				return err
			}
			a.log.Print(level, flags.tag, strings.Join(args, " "))
			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// pipeCmd returns the Cobra command that tags every stdin line.
func pipeCmd(a *app) *cobra.Command {
	flags := &lineFlags{}
	cmd := &cobra.Command{
		Use:     "pipe",
		Short:   heredoc.Doc(pipeCmdShort),
		Long:    heredoc.Doc(pipeCmdLong),
		Example: heredoc.Doc(pipeCmdExample),

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(flags.level)
			if err != nil {
				return err
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimRight(scanner.Text(), "\r")
				if line == "" {
					continue
				}
				a.log.Print(level, flags.tag, line)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
