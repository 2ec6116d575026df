package console

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/dm-vev/metafluids/server"
	"github.com/dm-vev/metafluids/server/fluid"
)

func newTestConsole(t *testing.T) (*Console, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	srv := server.Config{Log: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))}.New()
	return New(srv, log), buf
}

func TestFluidCommand(t *testing.T) {
	c, _ := newTestConsole(t)
	o := c.Execute("/fluid steam")
	if len(o.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", o.Errors())
	}
	out := strings.Join(o.Messages(), "\n")
	for _, want := range []string{"steam (Steam)", "State: gas", "Temperature: 400K", "Colour: #ffc4c4c4", "Block: gregtech:fluid.steam (runtime ID", "Formula: H2O"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%v", want, out)
		}
	}

	o = c.Execute("fluid plasma.helium")
	out = strings.Join(o.Messages(), "\n")
	if !strings.Contains(out, "State: plasma") || strings.Contains(out, "Block:") {
		t.Fatalf("unexpected plasma output:\n%v", out)
	}

	o = c.Execute("fluid unobtainium")
	if len(o.Errors()) != 1 || !errors.Is(o.Errors()[0], fluid.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", o.Errors())
	}
}

func TestMaterialCommand(t *testing.T) {
	c, _ := newTestConsole(t)
	o := c.Execute("material water")
	out := strings.Join(o.Messages(), "\n")
	if !strings.Contains(out, "Water (water)") || !strings.Contains(out, "Icon set: fluid") {
		t.Fatalf("unexpected output:\n%v", out)
	}
	o = c.Execute("material")
	if len(o.Errors()) != 1 {
		t.Fatalf("expected usage error, got %v", o.Errors())
	}
}

func TestListAndChecksum(t *testing.T) {
	c, _ := newTestConsole(t)
	o := c.Execute("fluids")
	if len(o.Messages()) != 2 || !strings.Contains(o.Messages()[1], "plasma.iron") {
		t.Fatalf("unexpected list output %v", o.Messages())
	}
	a := c.Execute("checksum").Messages()
	b := c.Execute("CHECKSUM").Messages()
	if len(a) != 1 || a[0] != b[0] {
		t.Fatalf("checksum differs between runs: %v, %v", a, b)
	}
}

func TestGradientCommand(t *testing.T) {
	c, _ := newTestConsole(t)
	o := c.Execute("gradient #808080 0")
	if len(o.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", o.Errors())
	}
	if got := o.Messages()[1]; got != "Darker: #808080 | Lighter: #808080" {
		t.Fatalf("unexpected gradient %q", got)
	}
	for _, line := range []string{"gradient zz 5", "gradient 808080 much", "gradient 808080"} {
		if o := c.Execute(line); len(o.Errors()) != 1 {
			t.Fatalf("%v: expected one error, got %v", line, o.Errors())
		}
	}
}

func TestRunLogsOutput(t *testing.T) {
	c, buf := newTestConsole(t)
	c.WithReader(strings.NewReader("help\n\nchecksum\nexplode\n")).Run(context.Background())

	out := buf.String()
	for _, want := range []string{"6 commands available", "Checksum: ", "unknown command \\\"explode\\\""} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output:\n%v", want, out)
		}
	}
}
