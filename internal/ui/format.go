package ui

import (
	"strconv"
	"strings"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/menu"
)

var unitSuffixes = [...]string{"", "K", "M", "G"}

// formatValue renders a Value item the way its format and flags ask for.
func formatValue(p *menu.ValuePayload, flags menu.Flags) string {
	v := int64(p.Current)
	suffix := ""
	if flags&menu.UnitPrefix != 0 {
		unit := 0
		for v >= 1024 && unit < len(unitSuffixes)-1 {
			v /= 1024
			unit++
		}
		suffix = unitSuffixes[unit]
	}

	var s string
	switch p.Format.Kind() {
	case menu.FormatUDec:
		s = strconv.FormatUint(uint64(uint32(v)), 10)
	case menu.FormatHex:
		s = strconv.FormatUint(uint64(uint32(v)), 16)
	case menu.FormatPointer:
		s = "0x" + padLeft(strconv.FormatUint(uint64(uint32(v)), 16), 8, '0')
		return s + suffix
	case menu.FormatFloat:
		neg := v < 0
		if neg {
			v = -v
		}
		s = strconv.FormatInt(v/100, 10) + "." + padLeft(strconv.FormatInt(v%100, 10), 2, '0')
		if neg {
			s = "-" + s
		}
	default:
		s = strconv.FormatInt(v, 10)
	}

	if p.Format&menu.FormatZeroPad != 0 {
		if strings.HasPrefix(s, "-") {
			s = "-" + padLeft(s[1:], p.Width-1, '0')
		} else {
			s = padLeft(s, p.Width, '0')
		}
	} else {
		s = padLeft(s, p.Width, ' ')
	}
	return s + suffix
}

func padLeft(s string, width int, fill byte) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(fill), width-len(s)) + s
}
