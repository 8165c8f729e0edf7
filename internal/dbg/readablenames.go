package dbg

import (
	"fmt"
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This converts arbitrary keys into random readable names, like
// "BraveOtter". Names are generated lazily and never forgotten, so it is meant
// for labelling output of short lived processes, not for long running use.
// Keys must be comparable: pointers label a specific object, while values
// such as a Triangle label every equal triangle the same way.

var (
	mu    sync.Mutex
	memo  = make(map[interface{}]string)
	title = cases.Title(language.English)
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return "Ø"
		}
	}
	if !v.Type().Comparable() {
		return fmt.Sprintf("%v", obj)
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := title.String(petname.Adjective()) + title.String(petname.Name())
	memo[obj] = r
	return r
}

// Forget all generated names.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
}
