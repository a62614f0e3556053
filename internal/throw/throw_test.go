package throw

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(fn func()) (err error) {
	defer func() {
		err = Recover(recover())
	}()
	fn()
	return nil
}

func TestRecover(t *testing.T) {
	assert.NoError(t, run(func() {}))

	err := run(func() { Fatalf("bad value %d", 3) })
	assert.EqualError(t, err, "bad value 3")

	err = run(func() { Wrapf(io.EOF, "reading %s", "x") })
	assert.EqualError(t, err, "reading x: EOF")
	assert.ErrorIs(t, err, io.EOF)

	assert.NoError(t, run(func() { Wrapf(nil, "unused") }))
}

func TestRecoverRepanicsForeignValues(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_ = run(func() { panic("boom") })
	})
	assert.Panics(t, func() {
		_ = run(func() {
			var m map[string]int
			m["x"] = 1
		})
	})
}
