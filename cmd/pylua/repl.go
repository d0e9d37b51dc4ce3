package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"pylua/lua"
	"pylua/parser"
)

const (
	historyFile = ".pylua_history"
	promptMain  = "tree> "
	promptCont  = "....> "
)

// repl reads tree documents from the terminal and prints their translation.
// A document ends at a blank line; :quit leaves.
func repl(tr *lua.Translator, entry string, stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "%s %s interactive. End a document with a blank line, :quit to exit.\n",
		lua.GeneratorName, lua.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	for {
		doc, ok := readDocument(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return 0
		}
		switch strings.TrimSpace(doc) {
		case "":
			continue
		case ":quit", ":q":
			return 0
		}

		out, err := translateDocument(tr, doc, entry)
		if err != nil {
			reportError(stderr, err)
			continue
		}
		fmt.Fprint(stdout, out)
		ln.AppendHistory(strings.ReplaceAll(doc, "\n", " "))
	}
}

// prompter reads one line of input; *liner.State is the terminal one
type prompter interface {
	Prompt(prompt string) (string, error)
}

// readDocument collects lines up to a blank line.
// A command on the first line is returned on its own. Ctrl-C discards the
// lines typed so far and starts over.
func readDocument(p prompter) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := p.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if err != nil {
			return "", false
		}

		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return line, true
		}
		if strings.TrimSpace(line) == "" {
			return b.String(), true
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// translateDocument decodes one tree document and translates its entry block
func translateDocument(tr *lua.Translator, doc, entry string) (string, error) {
	mod, err := parser.DecodeModule([]byte(doc))
	if err != nil {
		return "", err
	}
	block, err := parser.EntryBlock(mod, entry)
	if err != nil {
		return "", err
	}
	out, err := tr.Translate(block)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}
