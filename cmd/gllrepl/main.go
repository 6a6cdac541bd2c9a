/*
Command gllrepl is an interactive sandbox for the combinator engine: load
one of the demonstration grammars, feed it an input string, and inspect
the resulting parse trees (or count, or flattened leaves) without writing
a Go program.

It is a thin convenience wrapper — everything it does is expressible
directly against packages combinator, grammar and the root gll package;
the REPL exists purely so the engine can be exercised interactively.
*/
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"

	"github.com/ash-lang/gll"
	"github.com/ash-lang/gll/grammar"
	"github.com/ash-lang/gll/value"
)

func tracer() tracing.Trace {
	return tracing.Select("gll.gllrepl")
}

type session struct {
	current  *demo
	parser   grammar.Parser
	maxShown int
	repl     *readline.Instance
}

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	tracer().SetTraceLevel(tracing.LevelInfo)
	pterm.Info.Println("gllrepl - interactive general CFG parsing sandbox")
	pterm.Info.Println(`type :grammars to list fixtures, :load <name> to pick one, :quit to leave`)
	repl, err := readline.New("gll> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer repl.Close()
	s := &session{maxShown: 20, repl: repl}
	s.run()
}

func (s *session) run() {
	for {
		line, err := s.repl.Readline()
		if err != nil { // io.EOF, ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmd, isCmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if !isCmd {
			s.parseInput(line)
			continue
		}
		if quit := s.execute(cmd); quit {
			break
		}
	}
	pterm.Info.Println("goodbye")
}

func (s *session) execute(cmd parsedCommand) (quit bool) {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Printf("command %q panicked: %v\n", cmd.name, r)
			quit = false
		}
	}()
	switch cmd.name {
	case "quit", "q":
		return true
	case "grammars":
		s.listGrammars()
	case "load":
		s.loadGrammar(cmd.args)
	case "parse":
		if len(cmd.args) != 1 {
			pterm.Error.Println(`:parse expects one quoted argument, e.g. :parse "aaa"`)
			return false
		}
		s.parseInput(cmd.args[0])
	case "trace":
		s.setTrace(cmd.args)
	default:
		pterm.Error.Printf("unknown command %q\n", cmd.name)
	}
	return false
}

func (s *session) listGrammars() {
	for _, name := range []string{"arithmetic", "left-recursion", "indirect-left-recursion", "ambiguous-tail", "exponential", "degenerate", "sentence"} {
		d := demos[name]
		pterm.Println(pterm.Sprintf("%-24s %s", d.name, d.describe))
	}
}

func (s *session) loadGrammar(args []string) {
	if len(args) != 1 {
		pterm.Error.Println(":load expects exactly one grammar name")
		return
	}
	d, ok := demos[args[0]]
	if !ok {
		pterm.Error.Printf("unknown grammar %q; see :grammars\n", args[0])
		return
	}
	s.current = d
	s.parser = d.build()
	pterm.Info.Printf("loaded %q (%s); try: %s\n", d.name, d.describe, d.exampleText)
}

func (s *session) setTrace(args []string) {
	if len(args) != 1 {
		pterm.Error.Println(":trace expects one of Debug|Info|Error")
		return
	}
	var level tracing.TraceLevel
	switch strings.ToLower(args[0]) {
	case "debug":
		level = tracing.LevelDebug
	case "info":
		level = tracing.LevelInfo
	case "error":
		level = tracing.LevelError
	default:
		pterm.Error.Printf("unknown trace level %q\n", args[0])
		return
	}
	for _, pkg := range []string{"gll.trampoline", "gll.combinator", "gll.grammar", "gll.driver", "gll.value", "gll.gllrepl"} {
		tracing.Select(pkg).SetTraceLevel(level)
	}
}

func (s *session) parseInput(input string) {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Printf("parsing %q panicked: %v\n", input, r)
		}
	}()
	if s.parser == nil {
		pterm.Error.Println("no grammar loaded; try :grammars and :load <name>")
		return
	}
	results := gll.Parse(s.parser, input)
	all := results.All()
	if len(all) == 0 {
		pterm.Warning.Printf("no parse for %q\n", input)
		return
	}
	pterm.Info.Printf("%d parse tree(s) for %q\n", len(all), input)
	shown := all
	if len(shown) > s.maxShown {
		shown = shown[:s.maxShown]
		pterm.Warning.Printf("showing first %d of %d\n", s.maxShown, len(all))
	}
	for i, v := range shown {
		pterm.Println(pterm.Sprintf("--- tree %d (flattened: %s) ---", i+1, quoteFlatten(v)))
		pterm.DefaultTree.WithRoot(treeFromValue(v)).Render()
	}
}

func quoteFlatten(v value.Value) string {
	return strconv.Quote(value.Flatten(v))
}
