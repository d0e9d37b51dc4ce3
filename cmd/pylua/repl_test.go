package main

import (
	"errors"
	"io"
	"testing"

	"github.com/peterh/liner"
)

type scriptStep struct {
	line string
	err  error
}

// scriptedPrompter replays lines and errors, then reports EOF
type scriptedPrompter struct {
	steps   []scriptStep
	prompts []string
}

func (p *scriptedPrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.steps) == 0 {
		return "", io.EOF
	}
	s := p.steps[0]
	p.steps = p.steps[1:]
	return s.line, s.err
}

func lineStep(s string) scriptStep { return scriptStep{line: s} }

func TestReadDocument(t *testing.T) {
	tests := []struct {
		name   string
		steps  []scriptStep
		want   string
		wantOK bool
	}{
		{
			name:   "document ends at blank line",
			steps:  []scriptStep{lineStep("_type: Module"), lineStep("body: []"), lineStep("")},
			want:   "_type: Module\nbody: []\n",
			wantOK: true,
		},
		{
			name: "ctrl-c discards partial document",
			steps: []scriptStep{
				lineStep("_type: Module"),
				lineStep("body: [broken"),
				{err: liner.ErrPromptAborted},
				lineStep("_type: Module"),
				lineStep("body: []"),
				lineStep(""),
			},
			want:   "_type: Module\nbody: []\n",
			wantOK: true,
		},
		{
			name:   "command on first line",
			steps:  []scriptStep{lineStep(":quit")},
			want:   ":quit",
			wantOK: true,
		},
		{
			name:   "colon after first line is content",
			steps:  []scriptStep{lineStep("_type: Module"), lineStep(":quit"), lineStep("")},
			want:   "_type: Module\n:quit\n",
			wantOK: true,
		},
		{
			name:   "eof returns what was typed",
			steps:  []scriptStep{lineStep("_type: Module")},
			want:   "_type: Module\n",
			wantOK: true,
		},
		{
			name:   "eof on empty buffer ends the session",
			steps:  nil,
			want:   "",
			wantOK: false,
		},
		{
			name:   "eof after ctrl-c ends the session",
			steps:  []scriptStep{lineStep("_type: Module"), {err: liner.ErrPromptAborted}},
			want:   "",
			wantOK: false,
		},
		{
			name:   "terminal error ends the session",
			steps:  []scriptStep{lineStep("_type: Module"), {err: errors.New("tty gone")}},
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptedPrompter{steps: tt.steps}
			got, ok := readDocument(p)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("readDocument() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestReadDocumentPrompts(t *testing.T) {
	p := &scriptedPrompter{steps: []scriptStep{
		lineStep("_type: Module"),
		{err: liner.ErrPromptAborted},
		lineStep("_type: Module"),
		lineStep(""),
	}}
	readDocument(p)

	want := []string{promptMain, promptCont, promptMain, promptCont}
	if len(p.prompts) != len(want) {
		t.Fatalf("prompts = %q, want %q", p.prompts, want)
	}
	for i := range want {
		if p.prompts[i] != want[i] {
			t.Errorf("prompt %d = %q, want %q", i, p.prompts[i], want[i])
		}
	}
}
