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
	"os"

	"github.com/rstms/xdump/memory"
	"github.com/spf13/cobra"
)

var fileCmd = &cobra.Command{
	Use:   "file PATHNAME",
	Short: "hexdump a file",
	Long: `
Write a hexdump of PATHNAME starting at --offset (default 0).  The offset
column shows file offsets.  Without --length the rest of the file is dumped.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		offset, err := memory.ParseAddress(ViperGetString("offset"))
		cobra.CheckErr(err)

		fp, err := os.Open(args[0])
		cobra.CheckErr(err)
		defer fp.Close()
		info, err := fp.Stat()
		cobra.CheckErr(err)

		length, err := fileDumpLength(info.Size(), offset, ViperGetString("length"))
		cobra.CheckErr(err)
		if length == 0 {
			return
		}
		WriteDump(memory.NewFileReader(fp), offset, length)
	},
}

// fileDumpLength returns the number of bytes to dump from a file of size bytes
// starting at offset.  Zero means the file is empty.
func fileDumpLength(size int64, offset uint64, lengthParam string) (int, error) {
	if size == 0 {
		return 0, nil
	}
	if offset >= uint64(size) {
		return 0, fmt.Errorf("offset 0x%x beyond end of file (size %d)", offset, size)
	}
	remaining := uint64(size) - offset
	if remaining > maxDumpLength {
		remaining = maxDumpLength
	}
	return parseDumpLength(lengthParam, int(remaining))
}

func init() {
	rootCmd.AddCommand(fileCmd)
	OptionString(fileCmd, "offset", "o", "0", "file offset to start at (0x400, 1024)")
}
