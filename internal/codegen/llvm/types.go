package llvm

import (
	"tinygo.org/x/go-llvm"
)

// Variable is the backing global of a source variable.
type Variable struct {
	Name string
	Ty   llvm.Type
	Ptr  llvm.Value
}

func NewVariableValue(name string, ty llvm.Type, ptr llvm.Value) *Variable {
	return &Variable{Name: name, Ty: ty, Ptr: ptr}
}

// Function groups what is needed to call a declared function.
type Function struct {
	Fn llvm.Value
	Ty llvm.Type
}
