package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

const programName = "mwc"

// writeClipboard copies text to the system clipboard; tests replace it.
var writeClipboard = clipboard.WriteAll

// runOptions is the parsed command line.
type runOptions struct {
	Display     DisplayConfig
	Inputs      []string
	FilesFrom   string // Empty when --files0-from was not given
	Interactive bool
	NoIgnore    bool
	Clipboard   bool
	SaveFile    string
	Verbose     bool
}

// runtimeEnv carries the process streams and filesystem a run works on.
type runtimeEnv struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	FS     FileSystem
}

func osRuntimeEnv() runtimeEnv {
	return runtimeEnv{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		FS:     osFileSystem{},
	}
}

// verboseLogger writes diagnostics to stderr only when enabled.
type verboseLogger struct {
	w       io.Writer
	enabled bool
}

func (l verboseLogger) Printf(format string, args ...any) {
	if !l.enabled || l.w == nil {
		return
	}
	fmt.Fprintf(l.w, format, args...)
}

// run counts every source and prints the table. It returns the process exit
// status: 0 when every source was counted, 1 otherwise.
func run(opts runOptions, env runtimeEnv) int {
	logger := verboseLogger{w: env.Stderr, enabled: opts.Verbose}

	r := &resolver{fs: env.FS, stdin: env.Stdin, logger: logger}
	if opts.Interactive && opts.FilesFrom == "" {
		r.pick = func() ([]string, error) { return pickSources(".", opts.NoIgnore, logger) }
	}

	// --- Resolve ---
	state := newRunState()
	sources, err := r.resolve(opts.Inputs, opts.FilesFrom, state)
	if errors.Is(err, errSelectionAborted) {
		logger.Printf("Interactive selection aborted.\n")
		return 0
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v\n", programName, err)
		return 1
	}

	// --- Count ---
	logger.Printf("Counting %d source(s)\n", len(sources))
	for _, src := range sources {
		r.count(src, state)
	}

	// --- Output ---
	// Rows reach stdout as they are rendered; out keeps a copy for --save
	// and --clipboard.
	var out strings.Builder
	if err := renderResults(io.MultiWriter(env.Stdout, &out), env.Stderr, state, opts.Display); err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v\n", programName, err)
		return 1
	}
	status := 0
	if state.Failed() {
		status = 1
	}

	if opts.SaveFile != "" {
		if err := os.WriteFile(opts.SaveFile, []byte(out.String()), 0644); err != nil {
			fmt.Fprintf(env.Stderr, "%s: error writing to file %s: %v\n", programName, opts.SaveFile, err)
			status = 1
		} else {
			logger.Printf("Output saved to %s\n", opts.SaveFile)
		}
	}
	if opts.Clipboard {
		if err := writeClipboard(out.String()); err != nil {
			fmt.Fprintf(env.Stderr, "%s: error writing to clipboard: %v\n", programName, err)
		} else {
			logger.Printf("Output copied to clipboard.\n")
		}
	}
	return status
}
