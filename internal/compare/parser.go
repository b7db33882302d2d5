package compare

import (
	"fmt"

	"braces.dev/errtrace"
	"go.abhg.dev/syntaxblock/internal/code"
	"go.abhg.dev/syntaxblock/internal/indent"
)

// FormatError is returned when a block
// does not follow the comparison format.
type FormatError struct {
	// State is the state of the parser when it gave up.
	State State

	// Line is the 1-indexed line that could not be handled.
	// It is zero if the block ended too early.
	Line int

	// Msg describes what the parser expected.
	Msg string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s (state: %v)", e.Line, e.Msg, e.State)
	}
	return e.Msg
}

// Parse splits a comparison block into its left and right sections.
//
// text must already be stripped of its margin.
// Either both blocks are returned or an error is,
// in which case the error is a [*FormatError].
func Parse(text string) (left, right *code.Block, err error) {
	p := parser{
		left:  new(code.Block),
		right: new(code.Block),
	}
	for i, line := range indent.SplitLines(text) {
		if err := p.feed(line); err != nil {
			err.Line = i + 1
			return nil, nil, errtrace.Wrap(err)
		}
	}
	if err := p.finish(); err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	return p.left, p.right, nil
}

// parser is the state machine for a single Parse call.
type parser struct {
	state       State
	left, right *code.Block
}

func (p *parser) feed(line string) *FormatError {
	switch p.state {
	case Start:
		return p.start(line)
	case AwaitLeftHeader:
		return p.header(line, p.left, AwaitLeftSeparator2, "left heading section expected")
	case AwaitLeftSeparator2:
		return p.separator(line, InLeftBody, "expecting 2nd separator")
	case InLeftBody:
		p.leftBody(line)
	case AwaitRightHeader:
		return p.header(line, p.right, AwaitRightSeparator, "right heading section expected")
	case AwaitRightSeparator:
		return p.separator(line, InRightBody, "expecting 4th separator")
	case InRightBody:
		p.right.Lines = append(p.right.Lines, line)
	default:
		return p.fail("unexpected line after the end of the block")
	}
	return nil
}

// finish checks that the block ended inside the right body.
// The right section is the only one that may run to the end of the block.
func (p *parser) finish() *FormatError {
	if p.state != InRightBody {
		return &FormatError{
			State: p.state,
			Msg:   fmt.Sprintf("did not get all the sections: state: %v", p.state),
		}
	}
	p.state = Done
	return nil
}

func (p *parser) start(line string) *FormatError {
	switch {
	case indent.IsBlank(line):
		return nil
	case IsSeparator(line):
		p.state = AwaitLeftHeader
		return nil
	default:
		return p.fail("expecting 1st separator")
	}
}

func (p *parser) header(line string, blk *code.Block, next State, msg string) *FormatError {
	lang, heading, ok := ParseHeader(line)
	if !ok {
		return p.fail(msg)
	}
	blk.Language = lang
	blk.Heading = heading
	p.state = next
	return nil
}

func (p *parser) separator(line string, next State, msg string) *FormatError {
	if !IsSeparator(line) {
		return p.fail(msg)
	}
	p.state = next
	return nil
}

func (p *parser) leftBody(line string) {
	if IsSeparator(line) {
		p.state = AwaitRightHeader
		return
	}
	p.left.Lines = append(p.left.Lines, line)
}

func (p *parser) fail(msg string) *FormatError {
	return &FormatError{State: p.state, Msg: msg}
}
