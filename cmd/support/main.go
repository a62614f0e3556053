// Command support exposes the module's helpers on the command line: circle
// intersections over SVG scenes, bearings and distances, natural sorting,
// file hashing and naming, MCC lookups, dip conversion, URI copying, account
// data and a terminal animation.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/support"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
}

// cli carries what every command needs.
type cli struct {
	in  io.Reader
	out io.Writer
	au  aurora.Aurora

	debug bool
}

type command struct {
	clause *kingpin.CmdClause
	run    func() error
}

func run(args []string, in io.Reader, out io.Writer) error {
	app := kingpin.New("support", "Geometry, string and file helpers.")
	app.Terminate(nil)
	app.Writer(out)
	debug := app.Flag("debug", "Log at debug level to stderr and dump parsed inputs.").Bool()
	color := app.Flag("color", "Colour the output.").Default("true").Bool()

	c := &cli{in: in, out: out}
	var commands []command
	commands = append(commands, c.geometryCommands(app)...)
	commands = append(commands, c.fileCommands(app)...)
	commands = append(commands, c.miscCommands(app)...)

	selected, err := app.Parse(args)
	if err != nil {
		return err
	}

	c.au = aurora.NewAurora(*color)
	c.debug = *debug
	if c.debug {
		support.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer support.SetLogger(nil)
	}

	for _, cmd := range commands {
		if cmd.clause.FullCommand() == selected {
			return cmd.run()
		}
	}
	return errors.Errorf("unknown command %q", selected)
}

func (c *cli) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
