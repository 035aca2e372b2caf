// Package main is the entry point for the isoconv text filter.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/isoconv/internal/config"
	"github.com/dshills/isoconv/internal/config/watcher"
	"github.com/dshills/isoconv/internal/convert"
	"github.com/dshills/isoconv/internal/engine/buffer"
	"github.com/dshills/isoconv/internal/format"
	"github.com/dshills/isoconv/internal/plugin/api"
	pluginlua "github.com/dshills/isoconv/internal/plugin/lua"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Options holds the parsed command line.
type Options struct {
	ConfigPath string
	Direction  string
	Format     string
	Decode     bool
	Encode     bool
	Detect     bool
	InPlace    bool
	Watch      bool
	List       bool
	Script     string
	Strictness string
	Files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	registry, strict, err := buildRegistry(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case opts.List:
		printMenus(registry)
		return 0
	case opts.Script != "":
		return runScript(opts.Script, registry, strict)
	case opts.Detect:
		return runDetect(opts, registry)
	case opts.Watch:
		return runWatch(opts)
	}

	conv, err := resolveConversion(opts, registry, strict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return runConvert(opts, conv)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// buildRegistry loads the configuration and assembles the format registry:
// builtin formats at the configured strictness plus custom config tables.
func buildRegistry(opts Options) (*format.Registry, convert.Strictness, error) {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, 0, err
	}

	strict := cfg.Strictness()
	if opts.Strictness != "" {
		s, err := convert.ParseStrictness(opts.Strictness)
		if err != nil {
			return nil, 0, err
		}
		strict = s
	}

	registry := format.Builtin(strict)
	if err := registerCustomTables(registry, cfg); err != nil {
		return nil, 0, err
	}
	return registry, strict, nil
}

// registerCustomTables registers user-defined tables as decode-only
// formats so -f, -detect and -list all see them.
func registerCustomTables(registry *format.Registry, cfg *config.Config) error {
	tables, err := cfg.CompileTables()
	if err != nil {
		return err
	}
	for i, tab := range tables {
		t := tab
		desc := cfg.Tables[i].Description
		if desc == "" {
			desc = fmt.Sprintf("custom table %s", t.Name())
		}
		f := &format.Format{
			Name:        t.Name(),
			Description: desc,
			Decode: func(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
				return convert.Apply(buf, from, to, t)
			},
		}
		if err := registry.Register(f); err != nil {
			return err
		}
	}
	return nil
}

// resolveConversion picks the conversion from -t or -f.
func resolveConversion(opts Options, registry *format.Registry, strict convert.Strictness) (format.ConvertFunc, error) {
	switch {
	case opts.Direction != "" && opts.Format != "":
		return nil, fmt.Errorf("-t and -f are mutually exclusive")
	case opts.Direction != "":
		if opts.Decode || opts.Encode {
			return nil, fmt.Errorf("-decode and -encode apply only to -f, not -t")
		}
		dir, err := convert.ParseDirection(opts.Direction)
		if err != nil {
			return nil, err
		}
		tab, err := convert.TableFor(dir, strict)
		if err != nil {
			return nil, err
		}
		return func(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
			return convert.Apply(buf, from, to, tab)
		}, nil
	case opts.Format != "":
		if opts.Decode && opts.Encode {
			return nil, fmt.Errorf("-decode and -encode are mutually exclusive")
		}
		f, ok := registry.Lookup(opts.Format)
		if !ok {
			return nil, fmt.Errorf("unknown format %q (see -list)", opts.Format)
		}
		if opts.Encode {
			return f.EncodeRegion, nil
		}
		return f.DecodeRegion, nil
	default:
		return nil, fmt.Errorf("no conversion selected: use -t direction or -f format")
	}
}

// runWatch converts the input files in place, then keeps running: when the
// config file changes, the conversion is rebuilt from the new settings and
// reapplied to each file's retained original content, so tuning custom
// tables or strictness regenerates the outputs.
func runWatch(opts Options) int {
	if opts.ConfigPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -watch requires -config\n")
		return 1
	}
	if !opts.InPlace || len(opts.Files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: -watch requires -w and file arguments\n")
		return 1
	}

	originals := make(map[string]string, len(opts.Files))
	for _, path := range opts.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		originals[path] = string(data)
	}

	if err := reconvertAll(opts, originals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	w, err := watcher.New(opts.ConfigPath, func(string) {
		if err := reconvertAll(opts, originals); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = w.Close() }()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	return 0
}

// reconvertAll rebuilds the conversion from the current config and rewrites
// each file from its retained original content.
func reconvertAll(opts Options, originals map[string]string) error {
	registry, strict, err := buildRegistry(opts)
	if err != nil {
		return err
	}
	conv, err := resolveConversion(opts, registry, strict)
	if err != nil {
		return err
	}

	for _, path := range opts.Files {
		out, err := convertText(originals[path], conv)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := writeFilePreservingMode(path, out); err != nil {
			return err
		}
	}
	return nil
}

func runConvert(opts Options, conv format.ConvertFunc) int {
	if len(opts.Files) == 0 {
		if opts.InPlace {
			fmt.Fprintf(os.Stderr, "Error: -w requires file arguments\n")
			return 1
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading stdin: %v\n", err)
			return 1
		}
		out, err := convertText(string(data), conv)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Print(out)
		return 0
	}

	for _, path := range opts.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		out, err := convertText(string(data), conv)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			return 1
		}
		if opts.InPlace {
			if err := writeFilePreservingMode(path, out); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
		} else {
			fmt.Print(out)
		}
	}
	return 0
}

func convertText(text string, conv format.ConvertFunc) (string, error) {
	buf := buffer.NewBufferFromString(text)
	if _, err := conv(buf, 0, buf.Len()); err != nil {
		return "", err
	}
	return buf.Text(), nil
}

func writeFilePreservingMode(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), mode)
}

func runDetect(opts Options, registry *format.Registry) int {
	report := func(name, sample string) {
		f, ok := registry.DetectFormat(sample)
		label := "unknown"
		if ok {
			label = f.Name
		}
		if name == "" {
			fmt.Println(label)
		} else {
			fmt.Printf("%s: %s\n", name, label)
		}
	}

	if len(opts.Files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading stdin: %v\n", err)
			return 1
		}
		report("", string(data))
		return 0
	}

	for _, path := range opts.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		report(path, string(data))
	}
	return 0
}

func runScript(path string, registry *format.Registry, strict convert.Strictness) int {
	runner, err := pluginlua.NewRunner(api.NewISOModule(registry, strict))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer runner.Close()

	if err := runner.DoFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printMenus(registry *format.Registry) {
	for _, menu := range format.Menus(registry) {
		fmt.Println(menu.Title)
		for _, item := range menu.Items {
			fmt.Printf("  %-10s %s\n", item.Format, item.Label)
		}
	}
}

func parseFlags() Options {
	var opts Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.Direction, "t", "", "Conversion direction (e.g. tex2iso, iso2sgml)")
	flag.StringVar(&opts.Format, "f", "", "Format name (decodes by default, see -encode)")
	flag.BoolVar(&opts.Decode, "decode", false, "Decode from the -f format (the default)")
	flag.BoolVar(&opts.Encode, "encode", false, "Encode into the -f format instead of decoding")
	flag.BoolVar(&opts.Detect, "detect", false, "Report the detected format of each input")
	flag.BoolVar(&opts.InPlace, "w", false, "Rewrite input files in place")
	flag.BoolVar(&opts.Watch, "watch", false, "With -config and -w, reconvert the files whenever the config changes")
	flag.BoolVar(&opts.List, "list", false, "List formats grouped by menu")
	flag.StringVar(&opts.Script, "script", "", "Run a Lua script with the iso API")
	flag.StringVar(&opts.Strictness, "strict", "", "German decoding strictness (conservative, aggressive)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "isoconv - ISO 8859-1 accent conversion filter\n\n")
		fmt.Fprintf(os.Stderr, "Usage: isoconv [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  isoconv -t tex2iso paper.tex       Decode TeX accents to stdout\n")
		fmt.Fprintf(os.Stderr, "  isoconv -f sgml -encode page.txt   Encode to SGML entities\n")
		fmt.Fprintf(os.Stderr, "  isoconv -t iso2duden -w brief.txt  Transliterate in place\n")
		fmt.Fprintf(os.Stderr, "  isoconv -detect mystery.txt       Guess the input format\n")
		fmt.Fprintf(os.Stderr, "  isoconv -config c.toml -f mytab -w -watch notes.txt\n")
		fmt.Fprintf(os.Stderr, "                                    Reconvert on config change\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("isoconv %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.Files = flag.Args()
	return opts
}
