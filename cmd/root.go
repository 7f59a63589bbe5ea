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
	"fmt"
	"log"
	"os"

	"github.com/rstms/xdump/buildinfo"
	"github.com/rstms/xdump/memory"
	"github.com/spf13/cobra"
)

var OutputJSON bool

var rootCmd = &cobra.Command{
	Version: buildinfo.Version,
	Use:     "xdump",
	Short:   "hexdump files and process memory",
	Long: `
Write hexdumps of files and process memory in the classic offset / hex /
character column layout.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		OutputJSON = ViperGetBool("json")
		if ViperGetBool("debug") {
			log.Printf("xdump %s\n", buildinfo.String())
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)
	OptionString(rootCmd, "config", "c", "", "config file")
	OptionString(rootCmd, "logfile", "", "", "log filename")
	OptionSwitch(rootCmd, "debug", "d", "produce debug output")
	OptionSwitch(rootCmd, "verbose", "v", "produce diagnostic output")
	OptionSwitch(rootCmd, "json", "j", "format output as JSON")
	OptionSwitch(rootCmd, "no-humanize", "n", "display sizes in bytes")

	OptionString(rootCmd, "length", "l", "", "number of bytes to dump (512, 0x200, 4K)")
	OptionString(rootCmd, "width", "w", "16", "bytes per line")

	OptionSwitch(rootCmd, "disasm", "D", "add an x86 instruction listing")
	OptionString(rootCmd, "bits", "", "64", "x86 mode for --disasm (16, 32, 64)")
	OptionString(rootCmd, "syntax", "", "intel", "assembly syntax for --disasm (intel, att, go)")
}

func dumpLength(defaultLength int) int {
	length, err := parseDumpLength(ViperGetString("length"), defaultLength)
	cobra.CheckErr(err)
	return length
}

func parseDumpLength(param string, defaultLength int) (int, error) {
	if param == "" {
		return defaultLength, nil
	}
	size, err := memory.SizeParse(param)
	if err != nil {
		return 0, err
	}
	if size <= 0 || size > int64(maxDumpLength) {
		return 0, fmt.Errorf("length out of range: %s", param)
	}
	return int(size), nil
}
