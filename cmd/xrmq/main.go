package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/xrm"
	"github.com/wippyai/xrm/database"
	"github.com/wippyai/xrm/errors"
	"github.com/wippyai/xrm/match"
)

// resourceFlags collects repeatable -res definitions
type resourceFlags []database.Definition

func (f *resourceFlags) String() string {
	parts := make([]string, len(*f))
	for i, d := range *f {
		parts[i] = d.Pattern + ": " + d.Value
	}
	return strings.Join(parts, ", ")
}

// Set splits "pattern: value" on the first colon. Whitespace around the
// pattern and before the value is dropped, trailing value whitespace is
// kept.
func (f *resourceFlags) Set(s string) error {
	pattern, value, found := strings.Cut(s, ":")
	if !found {
		return fmt.Errorf("missing ':' in %q", s)
	}
	*f = append(*f, database.Definition{
		Pattern: strings.TrimSpace(pattern),
		Value:   strings.TrimLeft(value, " \t"),
	})
	return nil
}

func main() {
	var (
		defs        resourceFlags
		name        = flag.String("name", "", "Fully qualified resource name to query")
		class       = flag.String("class", "", "Resource class for the query (optional)")
		as          = flag.String("as", "string", "Result type: string, int, or bool")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Log match decisions")
	)
	flag.Var(&defs, "res", "Resource definition \"pattern: value\" (repeatable)")
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer logger.Sync()
		match.SetLogger(logger)
	}

	db, err := database.New(defs...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(2)
		}
		if err := runInteractive(db); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		return
	}

	if *name == "" {
		fmt.Fprintln(os.Stderr, `Usage: xrmq -res "pattern: value" [-res ...] -name <query> [-class <query>] [-as string|int|bool]`)
		fmt.Fprintln(os.Stderr, `       xrmq -res "pattern: value" [-res ...] -i  (interactive mode)`)
		os.Exit(2)
	}

	if err := run(db, *name, *class, *as); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.IsKind(err, errors.KindNoMatch) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func run(db *database.Database, name, class, as string) error {
	res, err := xrm.Resolve(db, name, class)
	if err != nil {
		return err
	}
	defer res.Close()

	switch as {
	case "string":
		fmt.Println(res.Value())
	case "int":
		n := res.Int64()
		if n == xrm.InvalidInt {
			return fmt.Errorf("value %q is not an integer", res.Value())
		}
		fmt.Println(n)
	case "bool":
		fmt.Println(res.Bool())
	default:
		return fmt.Errorf("unknown -as type %q", as)
	}
	return nil
}
