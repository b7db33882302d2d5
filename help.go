package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Help is syntaxblock's -h/-help flag.
// It supports retrieving help on various topics by passing in a parameter.
type Help string

// Well-known help topics.
const (
	NoHelp      Help = ""
	DefaultHelp Help = "default"
	UsageHelp   Help = "usage"
)

var (
	//go:embed help/default.txt
	_defaultHelp string

	//go:embed help/config.txt
	_configHelp string

	//go:embed help/compare.txt
	_compareHelp string

	//go:embed help/engine.txt
	_engineHelp string

	//go:embed help/tags.txt
	_tagsHelp string
)

// _helpTopics lists the topics in the order they're reported.
var _helpTopics = []struct {
	Topic Help
	Doc   string
}{
	{DefaultHelp, _defaultHelp},
	{UsageHelp, usageOf(_defaultHelp)},
	{"compare", _compareHelp},
	{"config", _configHelp},
	{"engine", _engineHelp},
	{"tags", _tagsHelp},
}

// usageOf returns the "USAGE: ..." line of a help document.
func usageOf(doc string) string {
	line, _, _ := strings.Cut(doc, "\n")
	return line + "\n"
}

// lookup returns the text for this topic.
func (h Help) lookup() (string, bool) {
	for _, t := range _helpTopics {
		if t.Topic == h {
			return t.Doc, true
		}
	}
	return "", false
}

// Write writes the help on this topic to the writer.
// Unknown topics are an error listing the known ones.
func (h Help) Write(w io.Writer) error {
	if h == NoHelp {
		return nil
	}

	doc, ok := h.lookup()
	if !ok {
		topics := make([]string, len(_helpTopics))
		for i, t := range _helpTopics {
			topics[i] = string(t.Topic)
		}
		return fmt.Errorf("unknown help topic %q: valid values are %q", string(h), topics)
	}

	_, err := io.WriteString(w, doc)
	return err
}

var _ flag.Getter = (*Help)(nil)

// Get returns the topic.
func (h *Help) Get() any { return *h }

// IsBoolFlag allows -help without a topic.
func (*Help) IsBoolFlag() bool { return true }

// String returns the name of this topic.
func (h Help) String() string { return string(h) }

// Set receives a command line value.
// Topics are case insensitive.
func (h *Help) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "true":
		s = string(DefaultHelp)
	case "false":
		s = string(NoHelp)
	}
	*h = Help(s)
	return nil
}
