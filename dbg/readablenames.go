package dbg

import (
	"fmt"
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name converts arbitrary comparable values, usually pointers to shapes, into
// random readable names so that they are easy to tell apart in renders and
// dumps. Names are memoized forever, so only use this while debugging.

var (
	memoMu sync.Mutex
	memo   = map[interface{}]string{}
	title  = cases.Title(language.English)
)

func init() {
	// Names are handed out in order of demand. Make them nondeterministic as a
	// reminder that a name means nothing across runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if v.IsNil() {
			return "Ø"
		}
	}

	if !reflect.TypeOf(obj).Comparable() {
		return fmt.Sprintf("%T", obj)
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title.String(petname.Adjective()), title.String(petname.Name()))
	memo[obj] = r
	return r
}
