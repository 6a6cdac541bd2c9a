package main

/*
commands.go builds a lexmachine lexer for the REPL's own meta-command
language (:load, :parse, :trace, :grammars, :quit) — not a grammar DSL; the
actual demonstration grammars (demogrammars.go) are plain Go using packages
combinator and grammar. lexmachine is used directly here (Add patterns,
Compile, Scanner(input).Next() in a loop) rather than through any
adapter built for a table-driven parser's token-at-a-time interface —
machinery this engine has no use for.
*/

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type cmdTokenKind int

const (
	tokColon cmdTokenKind = iota
	tokWord
	tokString
	tokEOF
)

type cmdToken struct {
	kind   cmdTokenKind
	lexeme string
}

var cmdLexer *lexmachine.Lexer

func makeCmdAction(kind cmdTokenKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return cmdToken{kind: kind, lexeme: string(m.Bytes)}, nil
	}
}

func initCmdLexer() (*lexmachine.Lexer, error) {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`:`), makeCmdAction(tokColon))
	lex.Add([]byte(`\"[^"]*\"`), makeCmdAction(tokString))
	lex.Add([]byte(`[^:"\s][^\s]*`), makeCmdAction(tokWord))
	lex.Add([]byte(`\s+`), func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return nil, nil
	})
	if err := lex.Compile(); err != nil {
		return nil, fmt.Errorf("compiling command lexer: %w", err)
	}
	return lex, nil
}

// tokenizeCommand splits a REPL line into cmdTokens, skipping whitespace.
func tokenizeCommand(line string) ([]cmdToken, error) {
	if cmdLexer == nil {
		lex, err := initCmdLexer()
		if err != nil {
			return nil, err
		}
		cmdLexer = lex
	}
	scanner, err := cmdLexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var toks []cmdToken
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scanning command: %w", err)
		}
		if tok == nil {
			continue
		}
		toks = append(toks, tok.(cmdToken))
	}
	return toks, nil
}

// parsedCommand is a REPL meta-command: ":name arg1 arg2 ...".
type parsedCommand struct {
	name string
	args []string
}

// parseCommand recognizes lines of the shape ":word word-or-"quoted" ...".
// Returns ok=false if line does not start with a colon (i.e. it is not a
// command at all, and the caller should treat it as input to parse with
// the loaded grammar instead).
func parseCommand(line string) (parsedCommand, bool, error) {
	toks, err := tokenizeCommand(line)
	if err != nil {
		return parsedCommand{}, false, err
	}
	if len(toks) == 0 || toks[0].kind != tokColon {
		return parsedCommand{}, false, nil
	}
	if len(toks) < 2 {
		return parsedCommand{}, false, fmt.Errorf("empty command")
	}
	cmd := parsedCommand{name: toks[1].lexeme}
	for _, tok := range toks[2:] {
		if tok.kind == tokString {
			cmd.args = append(cmd.args, tok.lexeme[1:len(tok.lexeme)-1])
		} else {
			cmd.args = append(cmd.args, tok.lexeme)
		}
	}
	return cmd, true, nil
}
