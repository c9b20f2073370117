// Package cpu holds the guest execution context owned by each emulated
// thread. The ARM interpreter that consumes it lives outside this module;
// the core only reads and redirects the program counter and exchanges
// call arguments and return values through the register file.
package cpu

import (
	vita3k "github.com/kevinmel2000/Vita3K"
)

// Register indices in the ARM register file.
const (
	RegSP = 13
	RegLR = 14
	RegPC = 15

	NumRegs = 16
)

// State is one thread's execution context: general-purpose registers plus
// the status register. It is guarded by the owning thread record's lock,
// not by its own synchronization.
type State struct {
	regs [NumRegs]uint32
	cpsr uint32
}

// NewState returns a zeroed execution context.
func NewState() *State {
	return &State{}
}

// Reg returns the value of general-purpose register i.
func (s *State) Reg(i int) uint32 {
	return s.regs[i]
}

// SetReg sets general-purpose register i.
func (s *State) SetReg(i int, value uint32) {
	s.regs[i] = value
}

// PC returns the current program counter.
func (s *State) PC() vita3k.Address {
	return vita3k.Address(s.regs[RegPC])
}

// WritePC redirects execution to addr. The caller must hold the owning
// thread record's lock.
func (s *State) WritePC(addr vita3k.Address) {
	s.regs[RegPC] = uint32(addr)
}

// LR returns the link register.
func (s *State) LR() vita3k.Address {
	return vita3k.Address(s.regs[RegLR])
}

// SetLR sets the link register.
func (s *State) SetLR(addr vita3k.Address) {
	s.regs[RegLR] = uint32(addr)
}

// ReturnValue writes an Sce ABI return value into r0.
func (s *State) ReturnValue(value uint32) {
	s.regs[0] = value
}

// Arg returns the i-th call argument per the AAPCS convention (r0-r3).
// Stack-passed arguments are the interpreter's concern, not ours.
func (s *State) Arg(i int) uint32 {
	return s.regs[i]
}

// CPSR returns the current program status register.
func (s *State) CPSR() uint32 {
	return s.cpsr
}

// SetCPSR sets the current program status register.
func (s *State) SetCPSR(value uint32) {
	s.cpsr = value
}
