// This file is part of armbf.
//
// armbf is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// armbf is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with armbf.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

import (
	"fmt"
)

// UndefinedOperator is the string in the Operator field of an Entry for an
// instruction that has no defined kind.
const UndefinedOperator = "undefined"

// Entry is a disassembled instruction.
type Entry struct {
	// the address value. the formatted value is in the Address field
	Addr uint32

	// the instruction word. for Thumb instructions only the lower 16 bits are
	// used
	Opcode uint32

	// instruction is an ARM instruction rather than a Thumb instruction
	IsARM bool

	// name of the instruction kind
	Kind string

	// formated address and opcode
	Address  string
	Bytecode string

	// the operator is the mnemonic with any condition and flag suffixes. the
	// operand is the specific details of the instruction
	//
	// for an undefined instruction the Operator is UndefinedOperator and the
	// Operand is empty
	Operator string
	Operand  string

	// the address an instruction refers to. only valid if HasTarget is true
	Target    uint32
	HasTarget bool
}

// Key returns the formatted address of the entry.
func (e Entry) Key() string {
	return e.Address
}

// CSV outputs CSV friendly entries, albeit seprated by semicolons rather than
// commas.
func (e Entry) CSV() string {
	return fmt.Sprintf("%s;%s;%s;%s;%s", e.Address, e.Bytecode, e.Kind, e.Operator, e.Operand)
}

// String returns a very simple representation of the disassembly entry.
func (e Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// Size returns the number of bytes in the instruction.
func (e Entry) Size() int {
	if e.IsARM {
		return 4
	}
	return 2
}

// IsUndefined returns true if the entry is for an undefined instruction.
func (e Entry) IsUndefined() bool {
	return e.Operator == UndefinedOperator
}

// complete fills in the fields common to every entry.
func (e *Entry) complete(addr uint32, opcode uint32, arm bool) {
	e.Addr = addr
	e.Opcode = opcode
	e.IsARM = arm
	e.Address = fmt.Sprintf("%08x", addr)
	if arm {
		e.Bytecode = fmt.Sprintf("%08x", opcode)
	} else {
		e.Bytecode = fmt.Sprintf("%04x", opcode)
	}
}
