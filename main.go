package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is the application version, set via ldflags.
var version string = "dev"

// metricFlags are the column switches, in output order, with their viper keys.
var metricFlags = []struct {
	name, short, key, usage string
}{
	{"lines", "l", "lines", "print the newline counts"},
	{"words", "w", "words", "print the word counts"},
	{"bytes", "c", "bytes", "print the byte counts"},
	{"chars", "m", "chars", "print the character counts"},
	{"max-line-length", "L", "max_line_length", "print the maximum display width"},
}

// newRootCmd builds the mwc command. The exit status of a completed run is
// stored in *status.
func newRootCmd(env runtimeEnv, status *int) *cobra.Command {
	var (
		v         = viper.New()
		cfgFile   string
		filesFrom string
	)

	cmd := &cobra.Command{
		Use:   programName + " [FILE]...",
		Short: "Print newline, word, and byte counts for each FILE",
		Long: `Print newline, word, and byte counts for each FILE, and a total line if
more than one FILE is specified. A word is a non-zero-length sequence of
characters delimited by white space.

With no FILE, or when FILE is -, read standard input.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile, env.Stderr)
		},
		Run: func(cmd *cobra.Command, args []string) {
			opts := runOptions{
				Display: newDisplayConfig(
					v.GetBool("lines"),
					v.GetBool("words"),
					v.GetBool("bytes"),
					v.GetBool("chars"),
					v.GetBool("max_line_length"),
				),
				Inputs:      args,
				FilesFrom:   filesFrom,
				Interactive: v.GetBool("interactive"),
				NoIgnore:    v.GetBool("no_ignore"),
				Clipboard:   v.GetBool("clipboard"),
				SaveFile:    v.GetString("save"),
				Verbose:     v.GetBool("verbose"),
			}
			*status = run(opts, env)
		},
	}
	cmd.SetIn(env.Stdin)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	flags := cmd.Flags()
	for _, f := range metricFlags {
		flags.BoolP(f.name, f.short, false, f.usage)
		cobra.CheckErr(v.BindPFlag(f.key, flags.Lookup(f.name)))
	}
	flags.StringVar(&filesFrom, "files0-from", "", "read input from the files specified by NUL-terminated names in file F; if F is - then read names from standard input")

	flags.Bool("interactive", false, "pick the files to count with a fuzzy finder")
	cobra.CheckErr(v.BindPFlag("interactive", flags.Lookup("interactive")))
	flags.Bool("no-ignore", false, "don't respect .gitignore when listing files for --interactive")
	cobra.CheckErr(v.BindPFlag("no_ignore", flags.Lookup("no-ignore")))
	flags.Bool("clipboard", false, "also copy the output to the clipboard")
	cobra.CheckErr(v.BindPFlag("clipboard", flags.Lookup("clipboard")))
	flags.String("save", "", "also save the output to the specified file")
	cobra.CheckErr(v.BindPFlag("save", flags.Lookup("save")))
	flags.Bool("verbose", false, "print diagnostics to standard error")
	cobra.CheckErr(v.BindPFlag("verbose", flags.Lookup("verbose")))
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/mwc/config.toml)")

	for _, f := range metricFlags {
		v.SetDefault(f.key, false)
	}
	v.SetDefault("interactive", false)
	v.SetDefault("no_ignore", false)
	v.SetDefault("clipboard", false)
	v.SetDefault("verbose", false)

	return cmd
}

// initConfig reads the config file and MWC_* environment variables into v.
// Precedence is flag > env > config file > default.
func initConfig(v *viper.Viper, cfgFile string, stderr io.Writer) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", programName))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix("MWC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	logger := verboseLogger{w: stderr, enabled: v.GetBool("verbose")}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Printf("No config file found, using defaults and flags.\n")
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	logger.Printf("Using config file: %s\n", v.ConfigFileUsed())
	return nil
}

// execute runs the command line args against env and returns the exit status.
func execute(args []string, env runtimeEnv) int {
	status := 0
	cmd := newRootCmd(env, &status)
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v\n", programName, err)
		fmt.Fprintf(env.Stderr, "Try '%s --help' for more information.\n", programName)
		return 1
	}
	return status
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	os.Exit(execute(os.Args[1:], osRuntimeEnv()))
}
