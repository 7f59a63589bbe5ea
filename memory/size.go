package memory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var SIZE_PATTERN = regexp.MustCompile(`^\s*([0-9.]+)([KMG]B?)?\s*$`)

const KB = int64(1024)
const MB = KB * 1024
const GB = MB * 1024

var sizeSuffixes = []struct {
	mult   int64
	suffix string
}{
	{GB, "G"},
	{MB, "M"},
	{KB, "K"},
}

// SizeParse accepts a byte count as hex (0x200), decimal (512) or decimal
// with a K, M or G suffix (1.5K).
func SizeParse(param string) (int64, error) {
	trimmed := strings.TrimSpace(param)
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		size, err := strconv.ParseInt(trimmed[2:], 16, 64)
		if err != nil {
			return 0, Fatalf("failed parsing hex size: '%s'", param)
		}
		return size, nil
	}
	match := SIZE_PATTERN.FindStringSubmatch(param)
	if len(match) != 3 {
		return 0, Fatalf("failed parsing size parameter: '%s'", param)
	}
	var multiplier int64 = 1
	switch strings.TrimSuffix(match[2], "B") {
	case "K":
		multiplier = KB
	case "M":
		multiplier = MB
	case "G":
		multiplier = GB
	}
	fsize, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, Fatal(err)
	}
	return int64(fsize * float64(multiplier)), nil
}

// ParseAddress accepts an address in hex (0x7ffd0000) or decimal.
func ParseAddress(param string) (uint64, error) {
	addr, err := strconv.ParseUint(strings.TrimSpace(param), 0, 64)
	if err != nil {
		return 0, Fatalf("failed parsing address: '%s'", param)
	}
	return addr, nil
}

func FormatSize(size int64) string {
	if ViperGetBool("no_humanize") {
		return fmt.Sprintf("%d", size)
	}
	for _, s := range sizeSuffixes {
		if size < s.mult {
			continue
		}
		if size%s.mult == 0 {
			return fmt.Sprintf("%d%s", size/s.mult, s.suffix)
		}
		sizeStr := fmt.Sprintf("%.2f", float64(size)/float64(s.mult))
		sizeStr = strings.TrimRight(sizeStr, "0")
		sizeStr = strings.TrimRight(sizeStr, ".")
		return sizeStr + s.suffix
	}
	return fmt.Sprintf("%d", size)
}
