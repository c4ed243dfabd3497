package x86_64

import (
	"bytes"
	"fmt"

	"minicc/pkg/codegen/assembly"
)

type x8664 struct {
	returnValue int32 // validated literal moved into %eax

	text bytes.Buffer // .text section
}

// NewX8664 creates a new x86-64 assembly generator for a program that
// returns the given value from _main.
func NewX8664(returnValue int32) assembly.Assembly {
	return &x8664{returnValue: returnValue}
}

// Generate produces the assembly text. The template is fixed; the only
// substitution point is the literal's decimal representation.
func (a *x8664) Generate() error {
	a.addText("\t.globl _main")
	a.addText("_main:")
	a.addText(fmt.Sprintf("\tmovl\t$%d, %%eax", a.returnValue))
	a.addText("\tret")
	return nil
}

// GetCode returns the generated assembly code as a string.
func (a *x8664) GetCode() string {
	return a.text.String()
}

// addText adds an instruction to the text section
func (a *x8664) addText(instruction string) {
	a.text.WriteString(instruction + "\n")
}
