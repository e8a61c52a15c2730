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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"
	"github.com/eigenform/armbf/arm"
	"github.com/eigenform/armbf/curated"
	"github.com/eigenform/armbf/disassembly"
	"github.com/eigenform/armbf/loader"
	"github.com/eigenform/armbf/logger"
	"github.com/eigenform/armbf/lut"
	"github.com/eigenform/armbf/modalflag"
	"github.com/eigenform/armbf/performance"
	"github.com/eigenform/armbf/random"
	"github.com/eigenform/armbf/statsview"
	"github.com/eigenform/armbf/terminal"
	"github.com/eigenform/armbf/thumb"
	"github.com/eigenform/armbf/version"
)

// Sentinal error patterns.
const (
	BadWord     = "armbf: not an instruction word (%s)"
	NoFile      = "armbf: a file is required"
	TooManyArgs = "armbf: too many arguments (%d)"
	BadColor    = "armbf: unknown colour setting (%s)"
)

func main() {
	// the value to use with os.Exit()
	exit := make(chan int)

	// #ctrlc default handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go func() {
		exit <- launch(os.Stdout, os.Args[1:])
	}()

	select {
	case <-intChan:
		fmt.Println("\r")
		os.Exit(0)
	case v := <-exit:
		os.Exit(v)
	}
}

// launch parses the arguments and runs the selected mode. Returns the value
// to be used with os.Exit().
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("DECODE", "DISASM", "LUT", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "DECODE":
		err = decode(md)

	case "DISASM":
		err = disasm(md)

	case "LUT":
		err = table(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// echoLog sends new log entries to the output. Entries are coloured if the
// output is a terminal.
func echoLog(output io.Writer) {
	if f, ok := output.(*os.File); ok && terminal.IsTerminal(f) {
		logger.SetEcho(logger.NewColorizer(output))
		return
	}
	logger.SetEcho(output)
}

// parseWord parses an instruction word from the command line. The word is
// always hexadecimal and the 0x prefix is optional.
func parseWord(s string, bits int) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, bits)
	if err != nil {
		return 0, curated.Errorf(BadWord, s)
	}
	return uint32(v), nil
}

func decode(md *modalflag.Modes) error {
	md.NewMode()

	isThumb := md.AddBool("thumb", false, "decode Thumb halfwords rather than ARM words")
	dump := md.AddBool("dump", false, "dump the decoded instructions and their views")
	dot := md.AddString("dot", "", "write a graphviz file of the decoded instructions")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp("Instruction words are given in hexadecimal. The 0x prefix is optional.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		echoLog(md.Output)
		defer logger.SetEcho(nil)
	}

	var decoded []any

	for _, a := range md.RemainingArgs() {
		if *isThumb {
			w, err := parseWord(a, 16)
			if err != nil {
				return err
			}
			ins := thumb.Decode(uint16(w))
			fmt.Fprintf(md.Output, "%04x  %-12s %s\n", ins.Halfword, ins.Kind, ins.Kind.Shape())
			decoded = append(decoded, ins)
			if *dump {
				spew.Fdump(md.Output, ins, ins.View())
			}
			continue
		}

		w, err := parseWord(a, 32)
		if err != nil {
			return err
		}
		ins := arm.Decode(w)
		fmt.Fprintf(md.Output, "%08x  %-12s %s\n", ins.Word, ins.Kind, ins.Kind.Shape())
		decoded = append(decoded, ins)
		if *dump {
			spew.Fdump(md.Output, ins, ins.View())
		}
	}

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return curated.Errorf("armbf: %v", err)
		}
		defer f.Close()
		memviz.Map(f, &decoded)
		logger.Logf(logger.Allow, "armbf", "graph of %d instructions written to %s", len(decoded), *dot)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	isThumb := md.AddBool("thumb", false, "disassemble Thumb instructions")
	base := md.AddAddress("base", 0, "address of the first instruction")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	kind := md.AddBool("kind", false, "include instruction kind in disassembly")
	csv := md.AddBool("csv", false, "output disassembly in CSV format")
	color := md.AddString("color", "AUTO", "colour output: AUTO, ON, OFF")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		echoLog(md.Output)
		defer logger.SetEcho(nil)
	}

	attr := disassembly.WriteAttr{
		Bytecode: *bytecode,
		Kind:     *kind,
	}

	switch strings.ToUpper(*color) {
	case "AUTO":
		if f, ok := md.Output.(*os.File); ok {
			attr.Color = terminal.IsTerminal(f)
		}
	case "ON":
		attr.Color = true
	case "OFF":
	default:
		return curated.Errorf(BadColor, *color)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(NoFile)
	case 1:
	default:
		return curated.Errorf(TooManyArgs, len(md.RemainingArgs()))
	}

	ld := loader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return err
	}

	dsm := disassembly.NewDisassembler()

	var entries []disassembly.Entry
	if *isThumb {
		hw, err := ld.Halfwords()
		if err != nil {
			return err
		}
		entries = dsm.DisassembleThumb(hw, *base)
	} else {
		words, err := ld.Words()
		if err != nil {
			return err
		}
		entries = dsm.DisassembleARM(words, *base)
	}

	if *csv {
		return disassembly.WriteCSV(md.Output, entries)
	}
	return disassembly.Write(md.Output, entries, attr)
}

// table prints the number of table entries for each kind.
func table(md *modalflag.Modes) error {
	md.NewMode()

	isThumb := md.AddBool("thumb", false, "build the Thumb table")
	entries := md.AddBool("entries", false, "list every entry in the table")
	dump := md.AddBool("dump", false, "dump the kind counts")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		echoLog(md.Output)
		defer logger.SetEcho(nil)
	}

	counts := make(map[string]int)

	if *isThumb {
		tab := lut.BuildThumb(thumb.Undefined, func(k thumb.Kind) thumb.Kind { return k })
		for i := range tab.Len() {
			k := tab.At(i)
			counts[k.String()]++
			if *entries {
				fmt.Fprintf(md.Output, "%03x  %04x  %s\n", i, lut.ThumbWord(i), k)
			}
		}
	} else {
		tab := lut.BuildARM(arm.Undefined, func(k arm.Kind) arm.Kind { return k })
		for i := range tab.Len() {
			w := lut.ARMWord(i)
			k := tab.At(i)
			counts[k.String()]++

			// the unconditional bank is only listed where it differs
			u := tab.Lookup(w | 0xf0000000)
			if *entries {
				if u != k {
					fmt.Fprintf(md.Output, "%03x  %08x  %s (%s)\n", i, w, k, u)
				} else {
					fmt.Fprintf(md.Output, "%03x  %08x  %s\n", i, w, k)
				}
			}
		}
	}

	if *dump {
		spew.Fdump(md.Output, counts)
		return nil
	}

	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		fmt.Fprintf(md.Output, "%-12s %d\n", n, counts[n])
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	inf := version.Version()
	if *revision {
		fmt.Fprintln(md.Output, inf)
	} else {
		fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, inf.Version)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	isThumb := md.AddBool("thumb", false, "decode Thumb instructions")
	method := md.AddString("method", "TREE", "decode method: TREE, LUT")
	duration := md.AddString("duration", "5s", "run duration (note: there is a lead time of up to 2s)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")
	rnd := md.AddInt("random", 0, "decode this many random instructions rather than the lookup table words")
	seed := md.AddInt("seed", -1, "seed for random instructions (the stream differs on every run if negative)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp("Without a file, every synthetic word of the lookup table is decoded unless\nthe -random flag is used.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		echoLog(md.Output)
		defer logger.SetEcho(nil)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	var ld loader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		if *rnd > 0 {
			gen := random.NewRandom(uint64(max(*seed, 0)))
			gen.ZeroSeed = *seed >= 0
			ld = loader.NewLoaderFromData("random", gen.Data(*rnd, *isThumb))
		} else {
			ld = loader.NewLoaderFromData("synthetic", syntheticData(*isThumb))
		}
	case 1:
		ld = loader.NewLoader(md.GetArg(0))
		if err := ld.Load(); err != nil {
			return err
		}
	default:
		return curated.Errorf(TooManyArgs, len(md.RemainingArgs()))
	}

	if *stats {
		statsview.Launch(md.Output, "")
	}

	return performance.Check(md.Output, prf, ld, *isThumb, *method, *duration)
}

// syntheticData returns the big-endian bytes of every synthetic word of the
// lookup table for the instruction set. ARM words are given the always
// condition.
func syntheticData(isThumb bool) []byte {
	if isThumb {
		data := make([]byte, 0, lut.ThumbEntries*2)
		for i := range lut.ThumbEntries {
			h := lut.ThumbWord(i)
			data = append(data, byte(h>>8), byte(h))
		}
		return data
	}

	data := make([]byte, 0, lut.ARMEntries*4)
	for i := range lut.ARMEntries {
		w := lut.ARMWord(i) | 0xe0000000
		data = append(data, byte(w>>24), byte(w>>16), byte(w>>8), byte(w))
	}
	return data
}
