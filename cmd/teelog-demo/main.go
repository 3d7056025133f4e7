package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"github.com/philipp01105/teelog/logger"
	"github.com/philipp01105/teelog/sink"
)

// config holds the command line flags.
type config struct {
	Name    string
	LogFile string
	NoColor bool
}

func newConfig(app *kingpin.Application) *config {
	c := &config{}
	app.Flag("name", "Logger name printed in every line.").Default("Main").StringVar(&c.Name)
	app.Flag("log-file", "Also append log lines to this file (disables color).").StringVar(&c.LogFile)
	app.Flag("no-color", "Never color level tags.").BoolVar(&c.NoColor)
	return c
}

// Run runs the interactive demo: it reads numbers from stdin and prints
// a row of dots for every positive one until it reads zero.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app := kingpin.New("teelog-demo", "Interactive teelog demo.")
	app.DefaultEnvars()
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	cfg := newConfig(app)

	if _, err := app.Parse(args[1:]); err != nil {
		return errors.Wrap(err, "invalid command configuration")
	}

	log := logger.New(cfg.Name, stdout, !cfg.NoColor && sink.IsTerminal(stdout))

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrapf(err, "could not open log file %q", cfg.LogFile)
		}
		defer f.Close()
		log.AddSink(f)
	}

	return loop(log, stdin, stdout)
}

// loop is the prompt/read/print cycle.
func loop(log *logger.Logger, stdin io.Reader, stdout io.Writer) error {
	log.Info("Program started.")
	log.Warn("User may or may not enter a number greater than zero!")

	in := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "Hello. Please enter a number (zero to quit): ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return errors.Wrap(err, "could not read input")
			}
			log.Info("Input closed.")
			return nil
		}

		text := strings.TrimSpace(in.Text())
		i, err := strconv.Atoi(text)
		if err != nil {
			log.Warn("Not a number:", strconv.Quote(text), "treating it as zero.")
			i = 0
		}

		switch {
		case i > 0:
			log.Info("Starting dot printing loop.")
			fmt.Fprintln(stdout, strings.Repeat(".", i+1))
			log.Info("Loop done!")
		case i == 0:
			log.Info("Program finished.")
			return nil
		default:
			log.Error("Var i was not > 0! i ==", i)
		}
	}
}

func main() {
	if err := Run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
