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

package arm

import "fmt"

// Cond is the condition field of an ARM instruction.
type Cond uint32

// List of valid Cond values.
const (
	EQ Cond = iota
	NE
	CS
	CC
	MI
	PL
	VS
	VC
	HI
	LS
	GE
	LT
	GT
	LE
	AL
	NV
)

var condNames = [...]string{
	"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc",
	"hi", "ls", "ge", "lt", "gt", "le", "al", "nv",
}

func (c Cond) String() string {
	return condNames[c&0x0f]
}

// Suffix returns the condition as it should appear after a mnemonic. The
// always condition and the unconditional space have no suffix.
func (c Cond) Suffix() string {
	if c&0x0f >= AL {
		return ""
	}
	return c.String()
}

// Register is a core register number.
type Register uint32

// Registers with special names.
const (
	SP Register = 13
	LR Register = 14
	PC Register = 15
)

func (r Register) String() string {
	switch r & 0x0f {
	case SP:
		return "sp"
	case LR:
		return "lr"
	case PC:
		return "pc"
	}
	return fmt.Sprintf("r%d", r&0x0f)
}

// Opcode is the operation of a data-processing instruction.
type Opcode uint32

// List of valid Opcode values.
const (
	OpAnd Opcode = iota
	OpEor
	OpSub
	OpRsb
	OpAdd
	OpAdc
	OpSbc
	OpRsc
	OpTst
	OpTeq
	OpCmp
	OpCmn
	OpOrr
	OpMov
	OpBic
	OpMvn
)

var opcodeNames = [...]string{
	"and", "eor", "sub", "rsb", "add", "adc", "sbc", "rsc",
	"tst", "teq", "cmp", "cmn", "orr", "mov", "bic", "mvn",
}

func (op Opcode) String() string {
	return opcodeNames[op&0x0f]
}

// IsCompare returns true if the operation only sets the status flags and has
// no destination register.
func (op Opcode) IsCompare() bool {
	return op&0x0f >= OpTst && op&0x0f <= OpCmn
}

// IsMove returns true if the operation has no first operand register.
func (op Opcode) IsMove() bool {
	return op&0x0f == OpMov || op&0x0f == OpMvn
}

// ShiftType is the type of shift applied to a register operand.
type ShiftType uint32

// List of valid ShiftType values.
const (
	LSL ShiftType = iota
	LSR
	ASR
	ROR
)

var shiftNames = [...]string{"lsl", "lsr", "asr", "ror"}

func (s ShiftType) String() string {
	return shiftNames[s&0x03]
}

// CoprocNumber is the number of a coprocessor.
type CoprocNumber uint32

func (n CoprocNumber) String() string {
	return fmt.Sprintf("p%d", n&0x0f)
}

// CoprocRegister is a coprocessor register number.
type CoprocRegister uint32

func (r CoprocRegister) String() string {
	return fmt.Sprintf("c%d", r&0x0f)
}
