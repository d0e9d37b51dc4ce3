package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"pylua/lua"
	"pylua/parser"
	"pylua/trace"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole CLI; it returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pylua", flag.ContinueOnError)
	fs.SetOutput(stderr)

	showVersion := fs.Bool("version", false, "Print version and exit")
	fs.BoolVar(showVersion, "v", false, "Print version and exit (shorthand)")
	debug := fs.Bool("debug", false, "Dump the syntax tree to stderr before translating")
	fs.BoolVar(debug, "d", false, "Dump the syntax tree (shorthand)")
	configPath := fs.String("config", "", "YAML config file")
	entry := fs.String("entry", "", "Translate only the body of this top-level function")
	interactive := fs.Bool("i", false, "Interactive mode: translate tree documents typed at a prompt")

	// Trace flags
	traceEnabled := fs.Bool("trace", false, "Enable translation tracing")
	traceFilter := fs.String("trace-filter", "", "Trace filter pattern (glob on node kinds, e.g., 'For' or '*Comp')")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: pylua [flags] <input> <output>\n\n")
		fmt.Fprintf(stderr, "Translates a Python syntax tree document (YAML or JSON) to Lua.\n")
		fmt.Fprintf(stderr, "Use - for stdin or stdout.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", lua.GeneratorName, lua.Version)
		return 0
	}

	if !*interactive && fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	logger := log.New(stderr, "", log.LstdFlags)

	cfg := lua.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = lua.LoadConfig(*configPath); err != nil {
			logger.Printf("Failed to load config: %v", err)
			return 1
		}
	}

	// Initialize tracer
	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, stderr)
		logger.Printf("Tracing enabled (filters: %v)", filters)
	} else {
		trace.Init(false, nil, nil)
	}

	if *interactive {
		return repl(lua.New(cfg), *entry, stdout, stderr)
	}
	input, output := fs.Arg(0), fs.Arg(1)

	mod, err := loadInput(input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	block, err := parser.EntryBlock(mod, *entry)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *debug {
		logger.Printf("Input: %s (%d statements, %d in entry block)", input, len(mod.Body), len(block))
		fmt.Fprintln(stderr, parser.DumpBlock(block))
	}

	out, err := lua.New(cfg).Translate(block)
	if err != nil {
		reportError(stderr, err)
		return 1
	}

	if err := writeOutput(output, out, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *debug {
		logger.Printf("Wrote %d lines to %s", len(out.Fragments), output)
	}
	return 0
}

// reportError prints err, followed by the node path when translation failed
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	var uc *lua.UnsupportedConstruct
	if errors.As(err, &uc) {
		for _, line := range uc.Traceback() {
			fmt.Fprintln(w, line)
		}
	}
}

func loadInput(path string, stdin io.Reader) (*parser.Module, error) {
	if path != "-" {
		return parser.LoadModule(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, err
	}
	return parser.DecodeModule(data)
}

func writeOutput(path string, out *lua.Output, stdout io.Writer) error {
	if path == "-" {
		_, err := out.WriteTo(stdout)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := out.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
