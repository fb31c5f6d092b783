// Command quicklog writes log lines in the quicklog default format from
// shell scripts: the message given as arguments, or every line read from
// stdin.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/philipp01105/quicklog/core"
	"github.com/philipp01105/quicklog/formatter"
	"github.com/philipp01105/quicklog/logger"
	"github.com/philipp01105/quicklog/registry"
)

// Version is set at build time with -ldflags
var Version = "dev"

const (
	appName = "quicklog"

	tagFlagName        = "tag"
	tagShortFlagName   = "t"
	levelFlagName      = "level"
	levelShortFlagName = "l"
	formatFlagName     = "format"
	formatShortName    = "f"
	fieldFlagName      = "field"

	formatProgram = "program"
	formatText    = "text"
	formatJSON    = "json"

	versionCmdName = "version"
)

var (
	errUnknownFormat = errors.New("unknown format")
	errLevelTooHigh  = errors.New("level not allowed")
	errBadField      = errors.New("field must be key=value")

	appShort = "Write log lines in the quicklog format"
	appLong  = heredoc.Doc(`
		quicklog logs its arguments, joined by spaces, as one message.
		Without arguments it logs every non-empty line read from stdin.

		Lines go to stderr as

			<timestamp> <tag>[<pid>] [<LEVEL>] <message> key=value ...

		Messages below the default level are dropped: DEBUG on a terminal,
		INFO otherwise. QUICKLOG_LEVEL, QUICKLOG_TIME_FORMAT and
		QUICKLOG_DISABLE override the default setup.`)
	appExample = heredoc.Doc(`
		# log a message tagged with the script name
		quicklog -t backup.sh "archive written"

		# forward the output of a command as warnings
		make 2>&1 | quicklog -l warn -t build

		# attach fields and use JSON output
		quicklog -f json --field host=db1 --field attempt=3 retrying`)
)

// rootFlags holds the flags of the root command
type rootFlags struct {
	tag    string
	level  string
	format string
	fields []string
}

func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.tag, tagFlagName, tagShortFlagName, appName, "program tag shown on each line")
	flags.StringVarP(&f.level, levelFlagName, levelShortFlagName, "info", "message level (debug, info, warn, error)")
	flags.StringVarP(&f.format, formatFlagName, formatShortName, formatProgram, "line format (program, text, json)")
	flags.StringArrayVar(&f.fields, fieldFlagName, nil, "key=value field attached to every line, repeatable")
}

func main() {
	exitCode := 0
	if err := rootCmd(registry.Root()).Execute(); err != nil {
		exitCode = 1
	}
	_ = registry.Root().Close()
	os.Exit(exitCode)
}

// rootCmd builds the quicklog command logging through reg
func rootCmd(reg *registry.Registry) *cobra.Command {
	flag := &rootFlags{}

	cmd := &cobra.Command{
		Use:     appName + " [flags] [message...]",
		Short:   appShort,
		Long:    appLong,
		Example: appExample,

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, reg, flag, args)
			if err != nil {
				cmd.PrintErrln("Error:", err)
			}
			return err
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd)
	cmd.AddCommand(versionCmd())
	return cmd
}

func run(cmd *cobra.Command, reg *registry.Registry, flag *rootFlags, args []string) error {
	level, err := core.ParseLevel(flag.level)
	if err != nil {
		return err
	}
	if level > core.ErrorLevel {
		return fmt.Errorf("%w: %s", errLevelTooHigh, level)
	}

	fields := make([]core.Field, 0, len(flag.fields))
	for _, kv := range flag.fields {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return fmt.Errorf("%w: %q", errBadField, kv)
		}
		fields = append(fields, logger.String(key, value))
	}

	opts := []logger.Option{
		logger.WithRegistry(reg),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithProgram(flag.tag),
	}
	switch flag.format {
	case formatProgram:
	case formatText:
		opts = append(opts, logger.WithFormatter(formatter.NewTextFormatter(formatter.Config{})))
	case formatJSON:
		opts = append(opts, logger.WithFormatter(formatter.NewJSONFormatter(formatter.Config{})))
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, flag.format)
	}
	log := logger.NewDeferred(flag.tag, opts...)

	if len(args) > 0 {
		log.Log(level, strings.Join(args, " "), fields...)
		return nil
	}
	return logLines(cmd.InOrStdin(), log, level, fields)
}

// logLines logs each non-empty line of r
func logLines(r io.Reader, log *logger.Deferred, level core.Level, fields []core.Field) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		log.Log(level, line, fields...)
	}
	return scanner.Err()
}

// versionCmd prints version information
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: "Display the " + appName + " version",

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, runtime.Version()))
		},
	}
}

func versionString(version, runtimeVersion string) string {
	return version + ", Go Version: " + runtimeVersion
}
