package console

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dm-vev/metafluids/server"
)

// Console provides a simple CLI that reads lookup commands from an io.Reader
// (defaulting to os.Stdin) and runs them against the provided server. Command
// output is written to a logger.
type Console struct {
	srv    *server.Server
	log    *slog.Logger
	reader io.Reader
	cmds   []command
}

// New returns a Console bound to the provided server. The console reads from
// os.Stdin and writes command output to the supplied logger.
func New(srv *server.Server, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{
		srv:    srv,
		log:    log,
		reader: os.Stdin,
		cmds:   commands(),
	}
}

// WithReader sets a custom reader for the console input. It enables testing the
// console without relying on os.Stdin.
func (c *Console) WithReader(r io.Reader) *Console {
	if r != nil {
		c.reader = r
	}
	return c
}

// Run starts consuming commands from the console. It blocks until the context
// is cancelled or the underlying reader reaches EOF.
func (c *Console) Run(ctx context.Context) {
	scanner := bufio.NewScanner(c.reader)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				c.log.Error("console input error", "err", err)
			}
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c.send(c.Execute(line))
	}
}

// Execute runs a single command line and returns its output. A leading slash
// is accepted but not required.
func (c *Console) Execute(line string) *Output {
	o := &Output{}
	args := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	if len(args) == 0 {
		return o
	}
	if strings.EqualFold(args[0], "help") {
		runHelp(c.cmds, o)
		return o
	}
	cmd, ok := byAlias(c.cmds, args[0])
	if !ok {
		o.Errorf("unknown command %q, try help", args[0])
		return o
	}
	cmd.run(c.srv, args[1:], o)
	return o
}

func (c *Console) send(o *Output) {
	for _, msg := range o.Messages() {
		c.log.Info(msg)
	}
	for _, err := range o.Errors() {
		c.log.Error(err.Error())
	}
}
