package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/jvm-runtime/config"
	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/klass"
	"github.com/wippyai/jvm-runtime/layout"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to runtime TOML config with class definitions")
		className   = flag.String("class", "", "Class symbol to inspect (optional)")
		list        = flag.Bool("list", false, "List defined classes and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *configFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -config <runtime.toml> [-class symbol]")
		fmt.Fprintln(os.Stderr, "       inspect -config <runtime.toml> -list")
		fmt.Fprintln(os.Stderr, "       inspect -config <runtime.toml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		klass.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*configFile, *className, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadRegistry builds and prepares a registry from a config file.
func loadRegistry(configFile string) (*klass.Registry, *config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	reg := klass.NewRegistry(cfg.HiddenTable())
	reg.RegisterValueTypes(cfg.ValueTypeSymbols()...)

	// Definitions are ordered supertype-first in the file.
	for _, cd := range cfg.Classes {
		decls, err := cd.Decls()
		if err != nil {
			return nil, nil, err
		}
		if _, err := reg.Define(layout.Symbol(cd.Type), layout.Symbol(cd.Super), decls); err != nil {
			return nil, nil, err
		}
	}
	if err := reg.PrepareAll(); err != nil {
		return nil, nil, err
	}
	return reg, cfg, nil
}

func run(configFile, className string, listOnly bool) error {
	reg, cfg, err := loadRegistry(configFile)
	if err != nil {
		return err
	}

	classes := reg.Classes()
	fmt.Printf("Config: %s\n", configFile)
	fmt.Printf("Classes: %d\n", len(classes))
	fmt.Printf("Value types: %d\n", len(cfg.ValueTypeSymbols()))

	if listOnly {
		fmt.Printf("\nDefined classes:\n")
		for _, k := range classes {
			res, err := k.Layout()
			if err != nil {
				return err
			}
			fmt.Printf("  %s (%d instance, %d static fields)\n",
				k.Type(), len(res.InstanceFields()), len(res.StaticFields()))
		}
		return nil
	}

	if className != "" {
		k, ok := reg.Lookup(layout.Symbol(className))
		if !ok {
			return errors.NotFound(errors.PhaseReflect, "class", className)
		}
		return printClass(reg, k)
	}

	for _, k := range classes {
		if err := printClass(reg, k); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

func printClass(reg *klass.Registry, k *klass.Klass) error {
	res, err := k.Layout()
	if err != nil {
		return err
	}

	fmt.Printf("\nClass %s", k.Type())
	if k.Super() != "" {
		fmt.Printf(" extends %s", k.Super())
	}
	if reg.IsValueType(k.Type()) {
		fmt.Printf("  [value type]")
	}
	fmt.Println()

	fmt.Printf("  instance: %d bytes primitive, %d reference slots\n",
		res.PrimitiveInstanceBytes(), res.InstanceRefCount())
	fmt.Printf("  static:   %d bytes primitive, %d reference slots\n",
		res.PrimitiveStaticBytes(), res.StaticRefCount())

	if fields := res.InstanceFields(); len(fields) > 0 {
		fmt.Printf("\n  Instance fields:\n")
		for _, f := range fields {
			fmt.Printf("    %s\n", formatField(f))
		}
	}
	if fields := res.StaticFields(); len(fields) > 0 {
		fmt.Printf("\n  Static fields:\n")
		for _, f := range fields {
			fmt.Printf("    %s\n", formatField(f))
		}
	}
	return nil
}

func formatField(f *layout.Field) string {
	var marks []string
	if f.Hidden {
		marks = append(marks, "hidden")
	}
	suffix := ""
	if len(marks) > 0 {
		suffix = "  [" + strings.Join(marks, ",") + "]"
	}
	return fmt.Sprintf("slot %2d  %-8s %-14s %s %d  holder %s%s",
		f.Slot, f.Kind, f.Name, storageIndexLabel(f), f.StorageIndex, f.Holder, suffix)
}

func storageIndexLabel(f *layout.Field) string {
	if f.Kind.IsPrimitive() {
		return "byte offset"
	}
	return "ref index"
}
