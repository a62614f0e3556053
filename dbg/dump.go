package dbg

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a deep, stable rendering of values to w.
func Dump(w io.Writer, values ...interface{}) {
	dumpConfig.Fdump(w, values...)
}

func Sdump(values ...interface{}) string {
	return dumpConfig.Sdump(values...)
}
