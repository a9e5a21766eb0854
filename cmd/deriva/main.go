package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/funvibe/deriva/internal/cache"
	"github.com/funvibe/deriva/internal/config"
	"github.com/funvibe/deriva/internal/impls"
	"github.com/funvibe/deriva/internal/pipeline"
	"github.com/funvibe/deriva/internal/schema"
	"github.com/funvibe/deriva/internal/symbols"
	"github.com/funvibe/deriva/internal/typeinfo"
	"github.com/mattn/go-isatty"
)

type options struct {
	schemaPath  string
	reflectAddr string
	goPattern   string
	interfaces  []string
	outPath     string
	cachePath   string
	importPaths []string
	verbose     bool
	checkOnly   bool
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <command> [options]

Commands:
  derive <schema>    Generate implementations for the types in a schema
  check <schema>     Validate a schema without emitting code
  list               List the interfaces that can be derived

Schema sources:
  file.yaml, file.yml    YAML type declarations
  file.proto             Protobuf source (see -I for import paths)
  file.binpb             Compiled protobuf descriptor set
  go:<pattern>           Exported structs of a Go package
  -reflect <addr>        Messages of a running gRPC server

Options:
  -i <names>    Comma-separated interfaces to derive (default: Eq,Ord,Show)
  -o <file>     Write generated code to a file instead of stdout
  -cache <db>   SQLite file used to cache rendered output
  -I <dir>      Protobuf import path (repeatable)
  -verbose      Log pipeline progress to stderr
`, os.Args[0])
}

func errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
}

func parseOptions(args []string) (*options, error) {
	opts := &options{interfaces: []string{config.EqInterface, config.OrdInterface, config.ShowInterface}}
	i := 0
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "-i" || arg == "-interfaces":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("%s requires a value", arg)
			}
			opts.interfaces = nil
			for _, name := range strings.Split(args[i], ",") {
				if name = strings.TrimSpace(name); name != "" {
					opts.interfaces = append(opts.interfaces, name)
				}
			}
		case arg == "-o" || arg == "-out":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("%s requires a value", arg)
			}
			opts.outPath = args[i]
		case arg == "-cache":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("-cache requires a value")
			}
			opts.cachePath = args[i]
		case arg == "-I":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("-I requires a value")
			}
			opts.importPaths = append(opts.importPaths, args[i])
		case arg == "-reflect":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("-reflect requires an address")
			}
			opts.reflectAddr = args[i]
		case arg == "-verbose" || arg == "--verbose":
			opts.verbose = true
		case strings.HasPrefix(arg, "go:"):
			opts.goPattern = strings.TrimPrefix(arg, "go:")
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unknown option: %s", arg)
		default:
			if opts.schemaPath != "" {
				return nil, fmt.Errorf("unexpected argument: %s", arg)
			}
			opts.schemaPath = arg
		}
		i++
	}
	if opts.schemaPath == "" && opts.goPattern == "" && opts.reflectAddr == "" {
		return nil, fmt.Errorf("no schema source given")
	}
	return opts, nil
}

// sourceFor resolves the schema source into a loader function based on
// how the source was specified.
func sourceFor(opts *options) (func() ([]*typeinfo.ParamTypeInfo, error), error) {
	if opts.reflectAddr != "" {
		return func() ([]*typeinfo.ParamTypeInfo, error) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return schema.FetchReflectedTypes(ctx, opts.reflectAddr)
		}, nil
	}
	if opts.goPattern != "" {
		return func() ([]*typeinfo.ParamTypeInfo, error) {
			return schema.LoadGoPackage(opts.goPattern)
		}, nil
	}
	switch ext := filepath.Ext(opts.schemaPath); ext {
	case ".yaml", ".yml":
		return func() ([]*typeinfo.ParamTypeInfo, error) {
			return schema.LoadYAMLFile(opts.schemaPath)
		}, nil
	case ".proto":
		importPaths := opts.importPaths
		if len(importPaths) == 0 {
			importPaths = []string{filepath.Dir(opts.schemaPath)}
		}
		return func() ([]*typeinfo.ParamTypeInfo, error) {
			return schema.LoadProtoFiles(importPaths, filepath.Base(opts.schemaPath))
		}, nil
	case ".binpb", ".pb":
		return func() ([]*typeinfo.ParamTypeInfo, error) {
			return schema.LoadDescriptorSet(opts.schemaPath)
		}, nil
	default:
		return nil, fmt.Errorf("unrecognized schema extension %q, want one of %s",
			ext, strings.Join(config.SchemaFileExtensions, " "))
	}
}

func runDerive(opts *options) int {
	source, err := sourceFor(opts)
	if err != nil {
		errorf("%v", err)
		return 1
	}

	var store *cache.Store
	if opts.cachePath != "" && !opts.checkOnly {
		store, err = cache.Open(opts.cachePath)
		if err != nil {
			errorf("open cache: %v", err)
			return 1
		}
		defer store.Close()
	}

	table := symbols.NewSymbolTable()
	stages := []pipeline.Processor{
		&pipeline.LoadStage{Source: source},
		&pipeline.DeriveStage{Table: table},
	}
	if !opts.checkOnly {
		stages = append(stages, &pipeline.RenderStage{Cache: store})
	}

	ctx := pipeline.NewContext(opts.interfaces)
	if opts.verbose {
		fmt.Fprintf(os.Stderr, "[%s] deriving %s\n", ctx.RequestID, strings.Join(opts.interfaces, ", "))
	}
	pipeline.New(stages...).Run(ctx)

	for _, diag := range ctx.Diagnostics {
		errorf("%s: %s", diag.Stage, diag.Message)
	}
	if ctx.HasErrors() {
		return 1
	}
	if opts.checkOnly {
		fmt.Fprintf(os.Stderr, "%d types ok\n", len(ctx.Types))
		return 0
	}

	var parts []string
	for _, result := range ctx.Results {
		if opts.verbose && result.FromCache {
			fmt.Fprintf(os.Stderr, "[%s] %s: cache hit\n", ctx.RequestID, result.TypeInfo.Name)
		}
		parts = append(parts, result.Rendered)
	}
	output := strings.Join(parts, "\n\n")
	if output != "" {
		output += "\n"
	}

	if opts.outPath != "" {
		if err := os.WriteFile(opts.outPath, []byte(output), 0644); err != nil {
			errorf("write output: %v", err)
			return 1
		}
		if opts.verbose {
			fmt.Fprintf(os.Stderr, "[%s] wrote %s\n", ctx.RequestID, opts.outPath)
		}
	} else {
		fmt.Print(output)
	}
	return 0
}

func handleList() {
	for _, name := range impls.Names() {
		fmt.Println(name)
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch cmd := os.Args[1]; cmd {
	case "help", "-help", "--help":
		printUsage()
	case "list":
		handleList()
	case "derive", "check":
		opts, err := parseOptions(os.Args[2:])
		if err != nil {
			errorf("%v", err)
			printUsage()
			os.Exit(1)
		}
		opts.checkOnly = cmd == "check"
		os.Exit(runDerive(opts))
	default:
		errorf("unknown command: %s", cmd)
		printUsage()
		os.Exit(1)
	}
}
