/*
Regexctl compiles regular expressions into automata and matches input
against them.

Usage:

	regexctl -p PATTERN [INPUT...]
	regexctl -i [--presets FILE.toml]

The flags are:

	-p, --pattern PATTERN
		Compile PATTERN and match each remaining argument against it,
		printing PASS or FAIL per input. Cannot be combined with -i.

	-i, --interactive
		Start an interactive REPL. Use ":pattern <p>" to compile a new
		pattern, ":preset <name>" to load one from --presets, and any
		other line is matched against the currently-compiled pattern.

	--presets FILE.toml
		Load named pattern presets from a TOML file mapping names to
		pattern strings, for use with ":preset <name>" in REPL mode.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/nkall/canonlr/internal/automaton"
	"github.com/nkall/canonlr/regex"
)

const (
	ExitSuccess = iota
	ExitUsageError
	ExitCompileError
)

var (
	flagPattern     = pflag.StringP("pattern", "p", "", "Pattern to compile and match remaining arguments against")
	flagInteractive = pflag.BoolP("interactive", "i", false, "Start an interactive REPL")
	flagPresets     = pflag.String("presets", "", "TOML file of named pattern presets, for use in REPL mode")
)

func main() {
	pflag.Parse()

	presets, err := loadPresets(*flagPresets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		os.Exit(ExitUsageError)
	}

	if *flagInteractive && *flagPattern != "" {
		fmt.Fprintln(os.Stderr, "ERROR: -p/--pattern cannot be combined with -i/--interactive")
		os.Exit(ExitUsageError)
	}

	if *flagInteractive {
		if err := runREPL(presets); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			os.Exit(ExitCompileError)
		}
		return
	}

	if *flagPattern == "" {
		fmt.Fprintln(os.Stderr, "ERROR: -p/--pattern is required outside of -i/--interactive mode")
		os.Exit(ExitUsageError)
	}

	m, err := regex.Compile(*flagPattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		os.Exit(ExitCompileError)
	}

	for _, input := range pflag.Args() {
		printVerdict(input, regex.Match(m, input))
	}
}

func loadPresets(file string) (map[string]string, error) {
	presets := map[string]string{}
	if file == "" {
		return presets, nil
	}

	if _, err := toml.DecodeFile(file, &presets); err != nil {
		return nil, fmt.Errorf("load presets %s: %w", file, err)
	}
	return presets, nil
}

func printVerdict(input string, matched bool) {
	if matched {
		fmt.Printf("PASS  %q\n", input)
	} else {
		fmt.Printf("FAIL  %q\n", input)
	}
}

func runREPL(presets map[string]string) error {
	rl, err := readline.NewEx(&readline.Config{Prompt: "regexctl> "})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	var current *automaton.Machine
	var currentPattern string

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case line == ":quit":
			return nil

		case strings.HasPrefix(line, ":pattern "):
			pattern := strings.TrimSpace(strings.TrimPrefix(line, ":pattern "))
			m, err := regex.Compile(pattern)
			if err != nil {
				fmt.Printf("ERROR: %s\n", err.Error())
				continue
			}
			current, currentPattern = m, pattern
			rl.SetPrompt(fmt.Sprintf("regexctl[%s]> ", currentPattern))
			fmt.Printf("compiled %q\n", pattern)

		case strings.HasPrefix(line, ":preset "):
			name := strings.TrimSpace(strings.TrimPrefix(line, ":preset "))
			pattern, ok := presets[name]
			if !ok {
				fmt.Printf("ERROR: no preset named %q\n", name)
				continue
			}
			m, err := regex.Compile(pattern)
			if err != nil {
				fmt.Printf("ERROR: %s\n", err.Error())
				continue
			}
			current, currentPattern = m, pattern
			rl.SetPrompt(fmt.Sprintf("regexctl[%s]> ", currentPattern))
			fmt.Printf("compiled preset %q (%q)\n", name, pattern)

		default:
			if current == nil {
				fmt.Println("ERROR: no pattern compiled yet; use :pattern <p> or :preset <name>")
				continue
			}
			printVerdict(line, regex.Match(current, line))
		}
	}
}
