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

// viewgen generates the accessor methods for the bitfield views in the arm
// and thumb packages. It reads a definition file where each view is a list of
// named fields with a bit range and a result type. For example:
//
//	view Branch branch instruction
//	Cond 31 28 Cond
//	Link 24 24 bool
//	Imm24 23 0 uint32
//
// The generated file is written to the output path and should be checked in.
// The packages run viewgen with go generate.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

const modulePath = "github.com/eigenform/armbf"

// Field is a single named field of a view.
type Field struct {
	Name string
	Hi   uint
	Lo   uint
	Type string
}

// View is a named view and its fields in the order they appear in the
// definition file.
type View struct {
	Name        string
	Description string
	Fields      []Field
}

func main() {
	pkg := flag.String("pkg", "", "package name of the generated file")
	word := flag.String("word", "uint32", "underlying type of the views")
	in := flag.String("in", "views.def", "definition file")
	out := flag.String("out", "views_gen.go", "generated file")
	dump := flag.Bool("dump", false, "dump the parsed definitions to stdout")
	flag.Parse()

	err := run(*pkg, *word, *in, *out, *dump)
	if err != nil {
		fmt.Fprintf(os.Stderr, "viewgen: %v\n", err)
		os.Exit(10)
	}
}

func run(pkg, word, in, out string, dump bool) error {
	if pkg == "" {
		return fmt.Errorf("package name required")
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	views, err := load(f)
	if err != nil {
		return fmt.Errorf("%s: %v", in, err)
	}

	if dump {
		spew.Dump(views)
	}

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer w.Close()

	return generate(w, pkg, word, in, views)
}

// load parses the definition file. Blank lines and lines beginning with a #
// are ignored.
func load(r io.Reader) ([]View, error) {
	var views []View

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		p := strings.Fields(s)
		if p[0] == "view" {
			if len(p) < 3 {
				return nil, fmt.Errorf("line %d: view requires a name and description", line)
			}
			views = append(views, View{
				Name:        p[1],
				Description: strings.Join(p[2:], " "),
			})
			continue
		}

		if len(views) == 0 {
			return nil, fmt.Errorf("line %d: field before first view", line)
		}
		if len(p) != 4 {
			return nil, fmt.Errorf("line %d: field requires name, hi, lo and type", line)
		}

		hi, err := strconv.ParseUint(p[1], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		lo, err := strconv.ParseUint(p[2], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		if hi < lo {
			return nil, fmt.Errorf("line %d: field %s has hi bit below lo bit", line, p[0])
		}
		if p[3] == "bool" && hi != lo {
			return nil, fmt.Errorf("line %d: bool field %s must be a single bit", line, p[0])
		}

		v := &views[len(views)-1]
		v.Fields = append(v.Fields, Field{
			Name: p[0],
			Hi:   uint(hi),
			Lo:   uint(lo),
			Type: p[3],
		})
	}

	return views, scanner.Err()
}

// imports returns the sorted list of packages used by the generated file.
func imports(views []View) []string {
	imp := map[string]bool{
		modulePath + "/bitmask": true,
	}
	for _, v := range views {
		for _, f := range v.Fields {
			if pkg, _, ok := strings.Cut(f.Type, "."); ok {
				imp[modulePath+"/"+pkg] = true
			}
		}
	}

	var l []string
	for p := range imp {
		l = append(l, p)
	}
	sort.Strings(l)
	return l
}

func article(s string) string {
	if strings.ContainsRune("aeiouAEIOU", rune(s[0])) {
		return "an"
	}
	return "a"
}

func generate(w io.Writer, pkg, word, source string, views []View) error {
	b := bufio.NewWriter(w)

	b.WriteString(licence)
	fmt.Fprintf(b, "\n// Code generated by viewgen from %s. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(b, "package %s\n\n", pkg)

	b.WriteString("import (\n")
	for _, p := range imports(views) {
		fmt.Fprintf(b, "\t%q\n", p)
	}
	b.WriteString(")\n")

	for _, v := range views {
		t := v.Name + "View"

		fmt.Fprintf(b, "\n// %s is a view of %s %s.\n", t, article(v.Description), v.Description)
		fmt.Fprintf(b, "type %s %s\n", t, word)

		fmt.Fprintf(b, "\n// Word returns the instruction word wrapped by the view.\n")
		fmt.Fprintf(b, "func (v %s) Word() %s {\n\treturn %s(v)\n}\n", t, word, word)

		for _, f := range v.Fields {
			if f.Type == "bool" {
				fmt.Fprintf(b, "\n// %s returns bit %d of the instruction word.\n", f.Name, f.Lo)
				fmt.Fprintf(b, "func (v %s) %s() bool {\n", t, f.Name)
				fmt.Fprintf(b, "\treturn bitmask.Bit(%s(v), %d)\n}\n", word, f.Lo)
				continue
			}

			fmt.Fprintf(b, "\n// %s returns bits %d:%d of the instruction word.\n", f.Name, f.Hi, f.Lo)
			fmt.Fprintf(b, "func (v %s) %s() %s {\n", t, f.Name, f.Type)
			if f.Type == word {
				fmt.Fprintf(b, "\treturn bitmask.Field(%s(v), %d, %d)\n}\n", word, f.Hi, f.Lo)
			} else {
				fmt.Fprintf(b, "\treturn %s(bitmask.Field(%s(v), %d, %d))\n}\n", f.Type, word, f.Hi, f.Lo)
			}
		}
	}

	return b.Flush()
}
