package common

import "github.com/olekukonko/ts"

// TerminalWidth is the width of the terminal, 0 when unknown
var TerminalWidth int

func init() {
	size, _ := ts.GetSize()
	TerminalWidth = size.Col()
}
