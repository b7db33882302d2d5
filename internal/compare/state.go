package compare

import "strconv"

// State is the position of the parser within a comparison block.
type State int

// States of the parser, in the order they are visited.
const (
	Start State = iota
	AwaitLeftHeader
	AwaitLeftSeparator2
	InLeftBody
	AwaitRightHeader
	AwaitRightSeparator
	InRightBody
	Done
)

var _stateNames = [...]string{
	Start:               "Start",
	AwaitLeftHeader:     "AwaitLeftHeader",
	AwaitLeftSeparator2: "AwaitLeftSeparator2",
	InLeftBody:          "InLeftBody",
	AwaitRightHeader:    "AwaitRightHeader",
	AwaitRightSeparator: "AwaitRightSeparator",
	InRightBody:         "InRightBody",
	Done:                "Done",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(_stateNames) {
		return _stateNames[s]
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}
