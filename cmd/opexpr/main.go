package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

func main() {
	var (
		inname, varsname string
		with             [][2]string
		nl, echo, verb   bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&varsname, "vars", "", "YAML file mapping variable names to expressions")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print postfix programs")
	flag.BoolVar(&verb, "v", false, "log details of error results")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verb {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	s := &session{echo: echo}
	if varsname != "" {
		f, err := os.Open(varsname)
		if err != nil {
			log.Fatal().Err(err).Msg("couldn't open variables file")
		}
		defs, err := loadVars(f)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Str("file", varsname).Msg("couldn't read variables")
		}
		with = append(defs, with...)
	}
	for _, d := range with {
		if err := s.bind(d[0], d[1]); err != nil {
			log.Fatal().Err(err).Str("name", d[0]).Str("value", d[1]).Msg("couldn't set variable")
		}
	}

	if inname == "" && flag.NArg() == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := repl(s); err != nil {
			log.Fatal().Err(err).Msg("terminal failed")
		}
		return
	}

	var ins []io.Reader
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't open input")
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, in := range ins {
		srcs, err := sources(in, nl)
		if err != nil {
			log.Fatal().Err(err).Msg("couldn't read input")
		}
		for _, src := range srcs {
			r, err := s.run(src)
			if err != nil {
				log.Error().Err(err).Str("line", src).Msg("couldn't assign")
				continue
			}
			fmt.Fprintln(out, r)
		}
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return bufio.NewReader(f), nil
	case inname == "-", std:
		return bufio.NewReader(os.Stdin), nil
	}
	return nil, nil
}

// sources splits an input into expressions. With lines set, each non-blank
// line is its own expression. Otherwise the entire input is one expression.
func sources(in io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var r []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		r = append(r, sc.Text())
	}
	return r, sc.Err()
}

// repl runs an interactive session on the terminal attached to stdin.
func repl(s *session) error {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, old)
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "> ")
	for {
		line, err := t.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := s.run(line)
		if err != nil {
			fmt.Fprintf(t, "%v\r\n", err)
			continue
		}
		fmt.Fprintf(t, "%s\r\n", r)
	}
}
