package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"
)

// FileSystem is the filesystem access the resolver needs.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

type osFileSystem struct{}

func (osFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (osFileSystem) Open(name string) (io.ReadCloser, error) { return os.Open(name) }

// errSelectionAborted is returned when the user leaves the interactive picker.
var errSelectionAborted = errors.New("selection aborted")

// resolver turns configured inputs into Sources and counts them.
type resolver struct {
	fs     FileSystem
	stdin  io.Reader
	pick   func() ([]string, error) // Interactive selection, nil when disabled
	logger verboseLogger
}

// resolve returns the sources to count. The number of user-named sources is
// stored in state before an empty list is replaced by implicit stdin.
func (r *resolver) resolve(inputs []string, filesFrom string, state *RunState) ([]Source, error) {
	var sources []Source
	switch {
	case filesFrom != "":
		list, err := r.readSourceList(parseSource(filesFrom), state)
		if err != nil {
			return nil, err
		}
		sources = list
	case r.pick != nil:
		picked, err := r.pick()
		if err != nil {
			return nil, err
		}
		for _, p := range picked {
			sources = append(sources, parseSource(p))
		}
	default:
		for _, in := range inputs {
			sources = append(sources, parseSource(in))
		}
	}

	state.requested = len(sources)
	if len(sources) == 0 {
		sources = []Source{{Kind: SourceStdin}}
	}
	return sources, nil
}

// readSourceList reads a NUL-separated list of inputs from src. Any failure
// here is fatal for the run.
func (r *resolver) readSourceList(src Source, state *RunState) ([]Source, error) {
	var in io.Reader
	switch src.Kind {
	case SourceStdin:
		r.logger.Printf("Reading source list from standard input\n")
		if !state.claimStdin() {
			return nil, nil
		}
		in = r.stdin
	default:
		r.logger.Printf("Reading source list from %s\n", src.Path)
		if info, err := r.fs.Stat(src.Path); err == nil && info.IsDir() {
			return nil, fmt.Errorf("cannot read file name list %s: Is a directory", src.Path)
		}
		f, err := r.fs.Open(src.Path)
		if err != nil {
			return nil, fmt.Errorf("cannot open %s for reading: %w", src.Path, err)
		}
		defer f.Close()
		in = f
	}

	var (
		br      = bufio.NewReader(in)
		sources []Source
	)
	for {
		entry, err := br.ReadBytes(0)
		if len(entry) > 0 {
			if entry[len(entry)-1] == 0 {
				entry = entry[:len(entry)-1]
			}
			if !utf8.Valid(entry) {
				return nil, fmt.Errorf("%s: invalid UTF-8 in file name list entry %d", src, len(sources)+1)
			}
			sources = append(sources, parseSource(string(entry)))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading file name list %s: %w", src, err)
		}
	}
	r.logger.Printf("Read %d source(s) from %s\n", len(sources), src)
	return sources, nil
}

// count counts one source into state. Only the first stdin source reads the
// stream; later ones record zero counts.
func (r *resolver) count(src Source, state *RunState) {
	if src.Kind == SourceStdin {
		if !state.claimStdin() {
			state.Apply(src, Metrics{})
			return
		}
		state.Apply(src, CountReader(r.stdin))
		return
	}

	rc, err := openSource(r.fs, src.Path)
	if err != nil {
		state.ApplyError(err)
		return
	}
	defer rc.Close()
	state.Apply(src, CountReader(rc))
}

// openSource classifies path as missing, a directory, or unopenable before
// handing back a stream.
func openSource(fsys FileSystem, path string) (io.ReadCloser, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NoFileError{Path: path}
		}
		return nil, &FileCountError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &IsDirectoryError{Path: path}
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, &FileCountError{Path: path, Err: err}
	}
	return f, nil
}
