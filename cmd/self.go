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
	"runtime"
	"unsafe"

	"github.com/rstms/xdump/memory"
	"github.com/spf13/cobra"
)

var selfSample = []byte("xdump self check\x00\x01\x02\x03\xfe\xff 0123456789 ABCDEFGHIJKLMNOPQRSTUVWXYZ")

var selfCmd = &cobra.Command{
	Use:   "self",
	Short: "hexdump a sample buffer from this process",
	Long: `
Read a known buffer from this process through the process memory reader and
write its hexdump.  Useful for checking that process memory access works.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		proc, err := memory.Self()
		cobra.CheckErr(err)
		addr := uint64(uintptr(unsafe.Pointer(&selfSample[0])))
		WriteDump(proc, addr, dumpLength(len(selfSample)))
		runtime.KeepAlive(selfSample)
	},
}

func init() {
	rootCmd.AddCommand(selfCmd)
}
