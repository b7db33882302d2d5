// Package tagdoc renders the code block tags of a document.
//
// Tags follow the block syntax of the webgen site generator:
//
//	{pygmentize:: java}
//	  class Foo {}
//	{pygmentize}
//
// The text after "::" holds the tag's parameters as YAML.
// It is either a single value for the tag's default parameter,
// or a mapping:
//
//	{pygmentize:: {lang: ruby, lines: true}}
//
// The default parameter of pygmentize is "lang".
// The default parameter of pygmentize_and_compare is "lines".
package tagdoc
