/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/rstms/xdump/disasm"
	"github.com/rstms/xdump/dump"
	"github.com/rstms/xdump/memory"
	"github.com/spf13/cobra"
)

const maxDumpLength = 64 * 1024 * 1024

type DumpOutput struct {
	Address string        `json:"address"`
	Length  int           `json:"length"`
	Dump    []string      `json:"dump"`
	Disasm  []disasm.Inst `json:"disasm,omitempty"`
}

func FormatJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	cobra.CheckErr(err)
	return string(data)
}

func newDisassembler() (*disasm.Disassembler, error) {
	return disasm.NewDisassembler(disasm.Config{
		Bits:   ViperGetInt("bits"),
		Syntax: disasm.Syntax(ViperGetString("syntax")),
	})
}

func newDumpOutput(region memory.Region, width int, d *disasm.Disassembler) (*DumpOutput, error) {
	text, err := dump.Format(region.Data, uint32(region.Address), width)
	if err != nil {
		return nil, err
	}
	output := DumpOutput{
		Address: fmt.Sprintf("0x%x", region.Address),
		Length:  len(region.Data),
		Dump:    strings.Split(text, "\n"),
	}
	if d != nil {
		output.Disasm = d.All(region.Data, region.Address)
	}
	return &output, nil
}

// WriteDump reads length bytes at addr from r and writes the dump to stdout.
func WriteDump(r memory.Reader, addr uint64, length int) {
	width := ViperGetInt("width")
	if ViperGetBool("verbose") {
		log.Printf("dump 0x%x length=%s width=%d\n", addr, memory.FormatSize(int64(length)), width)
	}

	if !OutputJSON && !ViperGetBool("disasm") {
		text, err := memory.DumpMemory(r, addr, length, width)
		cobra.CheckErr(err)
		fmt.Println(text)
		return
	}

	var d *disasm.Disassembler
	if ViperGetBool("disasm") {
		var err error
		d, err = newDisassembler()
		cobra.CheckErr(err)
	}
	region, err := memory.Read(r, addr, length)
	cobra.CheckErr(err)
	output, err := newDumpOutput(region, width, d)
	cobra.CheckErr(err)

	if OutputJSON {
		fmt.Println(FormatJSON(output))
		return
	}
	fmt.Println(strings.Join(output.Dump, "\n"))
	fmt.Println()
	fmt.Println(disasm.FormatInsts(output.Disasm))
}
