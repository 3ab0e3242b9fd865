package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gosuda/tasklist/internal/tasklist"
)

const quitCommand = "quit"

// Console reads commands line by line, dispatches each one synchronously
// and writes the rendered output before reading the next.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	handler *Handler
}

func New(store *tasklist.Store, in io.Reader, out io.Writer) *Console {
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		handler: NewHandler(store, out),
	}
}

// Run loops until the quit command or end of input. Hard dispatcher
// errors are returned to the caller unrecovered; the process is expected
// to stop on them.
func (c *Console) Run() error {
	fmt.Fprintln(c.out, "Welcome to TaskList! Type 'help' for available commands.")
	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			return c.in.Err()
		}
		line := c.in.Text()
		if line == quitCommand {
			return nil
		}
		if err := c.handler.Execute(line); err != nil {
			return err
		}
	}
}
