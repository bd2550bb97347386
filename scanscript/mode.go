package scanscript

import (
	"fmt"

	"github.com/vippsas/scanbuf"
)

// Mode selects the addressing model a script runs against.
type Mode string

const (
	ModeChar Mode = "char"
	ModeByte Mode = "byte"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeChar, ModeByte:
		return Mode(s), nil
	case "":
		return ModeChar, nil
	}
	return "", fmt.Errorf("unknown scanner mode %q, expected %s or %s", s, ModeChar, ModeByte)
}

func (m Mode) NewScanner(input string) (scanbuf.Scanner, error) {
	switch m {
	case ModeByte:
		return scanbuf.NewByteScanner(input), nil
	case ModeChar, "":
		s, err := scanbuf.NewCharScanner(input)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown scanner mode %q", string(m))
}
