package pipe

import (
	"fmt"
	"reflect"
)

// TypeError reports a value of the wrong dynamic type reaching a boxed stage.
type TypeError struct {
	Value any
	Want  reflect.Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("pipe: got %T, want %v", e.Value, e.Want)
}
