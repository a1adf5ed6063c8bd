package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-vec/vector"
)

type namedVector struct {
	name string
	vec  vector.Vector
}

// vectorFile is the YAML layout accepted by -f:
//
//	vectors:
//	  - name: a
//	    values: [1, 2, 3]
type vectorFile struct {
	Vectors []struct {
		Name   string `yaml:"name"`
		Values []any  `yaml:"values"`
	} `yaml:"vectors"`
}

func loadFile(path string) ([]namedVector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return decodeYAML(data)
}

func decodeYAML(data []byte) ([]namedVector, error) {
	var f vectorFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing vectors: %w", err)
	}

	out := make([]namedVector, 0, len(f.Vectors))
	for i, entry := range f.Vectors {
		v, err := vector.Convert(entry.Values)
		if err != nil {
			return nil, fmt.Errorf("vector %d (%q): %w", i, entry.Name, err)
		}
		name := entry.Name
		if name == "" {
			name = "v" + strconv.Itoa(i)
		}
		out = append(out, namedVector{name: name, vec: v})
	}
	return out, nil
}

func parseArgs(args []string) ([]namedVector, error) {
	out := make([]namedVector, 0, len(args))
	for i, arg := range args {
		nv, err := parseVector(arg)
		if err != nil {
			return nil, err
		}
		if nv.name == "" {
			nv.name = "#" + strconv.Itoa(i+1)
		}
		out = append(out, nv)
	}
	return out, nil
}

// parseVector parses "name=1,2,3" or "1,2,3".
func parseVector(arg string) (namedVector, error) {
	var nv namedVector
	body := arg
	if name, rest, ok := strings.Cut(arg, "="); ok {
		nv.name = strings.TrimSpace(name)
		body = rest
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nv, fmt.Errorf("vector %q has no elements", arg)
	}

	fields := strings.Split(body, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nv, fmt.Errorf("vector %q element %d: %w", arg, i, err)
		}
		values[i] = x
	}

	v, err := vector.Convert(values)
	if err != nil {
		return nv, err
	}
	nv.vec = v
	return nv, nil
}
