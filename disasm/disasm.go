package disasm

import (
	"fmt"
	"strings"

	"golang.org/x/arch/x86/x86asm"
)

const (
	ATTSyntax   Syntax = "att"
	GoSyntax    Syntax = "go"
	IntelSyntax Syntax = "intel"
)

type Syntax string

type Config struct {
	Bits   int
	Syntax Syntax
}

type Inst struct {
	Address uint64 `json:"address"`
	Bin     []byte `json:"bin"`
	Len     int    `json:"len"`
	Text    string `json:"text"`
}

type Disassembler struct {
	bits   int
	textFn func(inst x86asm.Inst, pc uint64) string
}

func NewDisassembler(config Config) (*Disassembler, error) {
	switch config.Bits {
	case 16, 32, 64:
	default:
		return nil, fmt.Errorf("unsupported x86 mode: %d bits", config.Bits)
	}

	d := Disassembler{bits: config.Bits}
	switch config.Syntax {
	case IntelSyntax, "":
		d.textFn = func(inst x86asm.Inst, pc uint64) string {
			return x86asm.IntelSyntax(inst, pc, nil)
		}
	case ATTSyntax:
		d.textFn = func(inst x86asm.Inst, pc uint64) string {
			return x86asm.GNUSyntax(inst, pc, nil)
		}
	case GoSyntax:
		d.textFn = func(inst x86asm.Inst, pc uint64) string {
			return x86asm.GoSyntax(inst, pc, nil)
		}
	default:
		return nil, fmt.Errorf("unsupported syntax type for x86: %q", config.Syntax)
	}
	return &d, nil
}

// All decodes data from start to end.  Bytes that do not decode are emitted
// as single byte "(bad)" entries.
func (d *Disassembler) All(data []byte, addr uint64) []Inst {
	var insts []Inst
	for i := 0; i < len(data); {
		pc := addr + uint64(i)
		x86Inst, err := x86asm.Decode(data[i:], d.bits)
		if err != nil || x86Inst.Len == 0 {
			insts = append(insts, Inst{
				Address: pc,
				Bin:     copySlice(data[i:], 1),
				Len:     1,
				Text:    "(bad)",
			})
			i++
			continue
		}
		insts = append(insts, Inst{
			Address: pc,
			Bin:     copySlice(data[i:], x86Inst.Len),
			Len:     x86Inst.Len,
			Text:    d.textFn(x86Inst, pc),
		})
		i += x86Inst.Len
	}
	return insts
}

func FormatInsts(insts []Inst) string {
	var output strings.Builder
	for i, inst := range insts {
		if i > 0 {
			output.WriteString("\n")
		}
		output.WriteString(fmt.Sprintf("%08X   %-30s %s", uint32(inst.Address), fmt.Sprintf("% X", inst.Bin), inst.Text))
	}
	return output.String()
}

func copySlice(src []byte, numBytes int) []byte {
	cp := make([]byte, numBytes)
	copy(cp, src[0:numBytes])
	return cp
}
