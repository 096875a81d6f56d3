package ui

import (
	"strings"

	"github.com/ferrovax/zeroscope/internal/format"
)

// helpLines renders one aligned line per binding from its help metadata.
func helpLines(k keymap) []string {
	bindings := k.bindings()
	rows := make([][]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		rows = append(rows, []string{h.Key, h.Desc})
	}
	return format.AlignRows(rows, nil)
}

// HelpText returns the key reference as a flat block, used by the -h banner.
func HelpText() string {
	return strings.Join(helpLines(defaultKeymap()), "\n")
}
