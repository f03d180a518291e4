// Package facade is the minimal facade-pattern demonstration: three dummy
// subsystems behind one simplified interface. The subsystems know nothing
// about the facade or each other and remain usable on their own.
package facade

import (
	"fmt"
	"io"
)

type SubsystemA struct {
	w io.Writer
}

func NewSubsystemA(w io.Writer) *SubsystemA {
	return &SubsystemA{w: w}
}

func (s *SubsystemA) Operation() {
	fmt.Fprintln(s.w, "A")
}

type SubsystemB struct {
	w io.Writer
}

func NewSubsystemB(w io.Writer) *SubsystemB {
	return &SubsystemB{w: w}
}

func (s *SubsystemB) Operation() {
	fmt.Fprintln(s.w, "B")
}

type SubsystemC struct{}

func NewSubsystemC() *SubsystemC {
	return &SubsystemC{}
}

func (s *SubsystemC) Operation() map[string][]int {
	return map[string][]int{"C": {1, 2, 3}}
}

// Facade composes the three subsystems. It holds no state of its own.
type Facade struct {
	a *SubsystemA
	b *SubsystemB
	c *SubsystemC
	w io.Writer
}

func New(w io.Writer) *Facade {
	return &Facade{
		a: NewSubsystemA(w),
		b: NewSubsystemB(w),
		c: NewSubsystemC(),
		w: w,
	}
}

// Operation1 runs subsystem A, then B.
func (f *Facade) Operation1() {
	f.a.Operation()
	f.b.Operation()
}

// Operation2 runs subsystem B, then prints C's mapping.
func (f *Facade) Operation2() {
	f.b.Operation()
	fmt.Fprintln(f.w, f.c.Operation())
}
