// Package compare parses the text format used to show two snippets
// of code side by side.
//
// A comparison block holds two sections.
// Each section is introduced by a header line
// surrounded by separators of six or more dashes:
//
//	------
//	java: The Java way
//	------
//	System.out.println("hi");
//	------
//	scala: The Scala way
//	------
//	println("hi")
//
// The header names the highlighting language before the colon
// and the heading of the section after it.
// The right section is not closed by a separator:
// it runs until the end of the block.
package compare
