package sessions

import (
	"github.com/chzyer/readline"
)

// LineReader supplies REPL input one line at a time. Readline returns
// io.EOF at end of input and readline.ErrInterrupt on ctrl-c.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// suspender is a LineReader that can release the terminal for another reader.
type suspender interface {
	Suspend() error
}

// Readline is a terminal LineReader with history.
type Readline struct {
	config   readline.Config
	instance *readline.Instance
}

var _ LineReader = new(Readline)

func NewReadline(historyFile string) *Readline {
	return &Readline{
		config: readline.Config{
			HistoryFile:       historyFile,
			HistorySearchFold: true,
			InterruptPrompt:   "^C",
			EOFPrompt:         "exit",
		},
	}
}

func (r *Readline) Readline() (string, error) {
	if r.instance == nil {
		config := r.config
		instance, err := readline.NewEx(&config)
		if err != nil {
			return "", err
		}
		r.instance = instance
	}
	return r.instance.Readline()
}

func (r *Readline) SetPrompt(prompt string) {
	r.config.Prompt = prompt
	if r.instance != nil {
		r.instance.SetPrompt(prompt)
	}
}

// Suspend releases the terminal. The next Readline reacquires it.
func (r *Readline) Suspend() error {
	if r.instance == nil {
		return nil
	}
	err := r.instance.Close()
	r.instance = nil
	return err
}

func (r *Readline) Close() error {
	return r.Suspend()
}
