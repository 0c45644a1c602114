package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/opexpr"
)

// session holds variable bindings shared by the expressions it evaluates.
type session struct {
	names []string
	vals  map[string]opexpr.Value
	echo  bool
}

// bind evaluates src with the current bindings and binds the result to name.
func (s *session) bind(name, src string) error {
	if !isIdent(name) {
		return fmt.Errorf("invalid variable name %q", name)
	}
	v := s.eval(src).Eval()
	if s.vals == nil {
		s.vals = make(map[string]opexpr.Value)
	}
	if _, ok := s.vals[name]; !ok {
		s.names = append(s.names, name)
	}
	s.vals[name] = v
	log.Debug().Str("name", name).Stringer("value", v).Msg("bound")
	return nil
}

// eval parses src with the session's bindings.
func (s *session) eval(src string) *opexpr.Expr {
	opts := make([]opexpr.Option, 0, len(s.names))
	for _, name := range s.names {
		opts = append(opts, opexpr.WithVar(name, s.vals[name]))
	}
	return opexpr.Parse(src, opts...)
}

// run handles one line of input, either an assignment "name = expr" or an
// expression to evaluate. It returns the text to show for the line.
func (s *session) run(line string) (string, error) {
	if name, src, ok := splitAssign(line); ok {
		if err := s.bind(name, src); err != nil {
			return "", err
		}
		return name + " = " + s.vals[name].String(), nil
	}
	e := s.eval(line)
	r := e.Eval()
	if err := r.AsError(); err != nil {
		log.Debug().Err(err).Str("expr", strings.TrimSpace(line)).Str("rpn", e.String()).Msg("error result")
	}
	if s.echo {
		return e.String() + " : " + r.String(), nil
	}
	return r.String(), nil
}

// splitAssign splits a line of the form "name = expr". The = must not be
// part of a comparison operator.
func splitAssign(line string) (name, src string, ok bool) {
	for i := 0; i < len(line); i++ {
		if line[i] != '=' {
			continue
		}
		if i > 0 && strings.IndexByte("=!<>", line[i-1]) >= 0 {
			i++
			continue
		}
		if i+1 < len(line) && line[i+1] == '=' {
			i++
			continue
		}
		name = strings.TrimSpace(line[:i])
		if !isIdent(name) {
			return "", "", false
		}
		return name, line[i+1:], true
	}
	return "", "", false
}

func isIdent(name string) bool {
	if name == "" || name == "true" || name == "false" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// loadVars reads a YAML mapping of variable names to expressions, keeping
// the order in which they appear.
func loadVars(r io.Reader) ([][2]string, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: variables must be a mapping", m.Line)
	}
	defs := make([][2]string, 0, len(m.Content)/2)
	for i := 0; i < len(m.Content)-1; i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: value of %s must be a scalar", v.Line, k.Value)
		}
		defs = append(defs, [2]string{k.Value, v.Value})
	}
	return defs, nil
}
