package main

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"braces.dev/errtrace"
	"github.com/BurntSushi/toml"
	"github.com/peterbourgon/ff/v3"
)

// configFileParser picks the parser for the config file at path
// based on its extension.
func configFileParser(path string) ff.ConfigFileParser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlParser
	}
	return ff.PlainParser
}

// tomlParser is an ff.ConfigFileParser for TOML files.
//
// Keys of nested tables are joined with "-",
// so [compare] lines = true sets -compare-lines.
// Arrays set a flag once per element.
func tomlParser(r io.Reader, set func(name, value string) error) error {
	var doc map[string]any
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(setTOML("", doc, set))
}

func setTOML(prefix string, table map[string]any, set func(name, value string) error) error {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		name := key
		if prefix != "" {
			name = prefix + "-" + key
		}

		switch v := table[key].(type) {
		case map[string]any:
			if err := setTOML(name, v, set); err != nil {
				return errtrace.Wrap(err)
			}
		case []any:
			for _, item := range v {
				if err := set(name, fmt.Sprint(item)); err != nil {
					return errtrace.Wrap(err)
				}
			}
		default:
			if err := set(name, fmt.Sprint(v)); err != nil {
				return errtrace.Wrap(err)
			}
		}
	}
	return nil
}
