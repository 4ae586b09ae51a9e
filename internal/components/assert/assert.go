// Package assert panics on broken wiring, it is meant for constructor
// arguments, never for input coming from outside the program.
package assert

import "fmt"

func NotNil(name string, value any) {
	if value == nil {
		panic(fmt.Sprintf("%s must not be nil", name))
	}
}
