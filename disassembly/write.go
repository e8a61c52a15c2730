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
	"io"
	"strings"

	"github.com/eigenform/armbf/curated"
	"github.com/eigenform/armbf/terminal"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	Bytecode bool
	Kind     bool
	Color    bool
}

// widths of the entry fields.
type columns struct {
	address  int
	bytecode int
	kind     int
	operator int
}

func (col *columns) update(e Entry) {
	col.address = max(col.address, len(e.Address))
	col.bytecode = max(col.bytecode, len(e.Bytecode))
	col.kind = max(col.kind, len(e.Kind))
	col.operator = max(col.operator, len(e.Operator))
}

// pen colours for the fields of an entry.
func pen(attr WriteAttr, p map[string]string, colour string) string {
	if !attr.Color {
		return ""
	}
	return p[colour]
}

// Write the entries to io.Writer. One entry per line with each field in
// its own column.
func Write(output io.Writer, entries []Entry, attr WriteAttr) error {
	var col columns
	for _, e := range entries {
		col.update(e)
	}

	for _, e := range entries {
		if err := writeLine(output, col, attr, e); err != nil {
			return err
		}
	}

	return nil
}

// WriteLine writes a single entry to io.Writer.
func WriteLine(output io.Writer, e Entry, attr WriteAttr) error {
	var col columns
	col.update(e)
	return writeLine(output, col, attr, e)
}

func writeLine(output io.Writer, col columns, attr WriteAttr, e Entry) error {
	s := strings.Builder{}

	s.WriteString(terminal.Colorize(pen(attr, terminal.DimPens, "cyan"), fmt.Sprintf("%-*s", col.address, e.Address)))
	s.WriteString("  ")

	if attr.Bytecode {
		s.WriteString(terminal.Colorize(pen(attr, terminal.DimPens, "white"), fmt.Sprintf("%-*s", col.bytecode, e.Bytecode)))
		s.WriteString("  ")
	}

	if attr.Kind {
		s.WriteString(terminal.Colorize(pen(attr, terminal.DimPens, "magenta"), fmt.Sprintf("%-*s", col.kind, e.Kind)))
		s.WriteString("  ")
	}

	operatorPen := pen(attr, terminal.Pens, "yellow")
	if e.IsUndefined() {
		operatorPen = pen(attr, terminal.Pens, "red")
	}

	if e.Operand == "" {
		s.WriteString(terminal.Colorize(operatorPen, e.Operator))
	} else {
		s.WriteString(terminal.Colorize(operatorPen, fmt.Sprintf("%-*s", col.operator, e.Operator)))
		s.WriteString(" ")
		s.WriteString(e.Operand)
	}

	// targets that are not already shown in the operand
	if e.HasTarget {
		t := fmt.Sprintf("0x%08x", e.Target)
		if t != e.Operand {
			s.WriteString(terminal.Colorize(pen(attr, terminal.DimPens, "green"), fmt.Sprintf(" ; %s", t)))
		}
	}

	s.WriteString("\n")

	if _, err := io.WriteString(output, s.String()); err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	return nil
}

// WriteCSV writes the entries to io.Writer in CSV format, one entry per line.
func WriteCSV(output io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := io.WriteString(output, e.CSV()+"\n"); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}
	return nil
}
