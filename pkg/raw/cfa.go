package raw

import(
	"fmt"
	"strings"
)

// CFA is the color description tag for a mosaic. libraw calls this
// `cdesc`, and for the usual Bayer sensors it reads "RGBG": the four
// colors R, G1, B, G2, which sit in an RGGB layout:
//
//   row 0: R  G1 R  G1 ...
//   row 1: G2 B  G2 B  ...
type CFA string

const(
	CFA_RGBG CFA = "RGBG"
	CFA_RGGB CFA = "RGGB"
)

func ParseCFA(s string) (CFA, error) {
	c := CFA(strings.ToUpper(strings.TrimSpace(s)))
	if len(c) != 4 {
		return c, fmt.Errorf("cfa tag '%s' is not four colors: %w", s, ErrUnsupportedCFA)
	}
	return c, c.Check()
}

// IsRGGB is true for both spellings of the one layout we can develop.
func (c CFA)IsRGGB() bool {
	return c == CFA_RGBG || c == CFA_RGGB
}

func (c CFA)Check() error {
	if !c.IsRGGB() {
		return fmt.Errorf("cfa '%s': %w", string(c), ErrUnsupportedCFA)
	}
	return nil
}

// Color names the filter over the photosite at (x,y), assuming RGGB.
func (c CFA)Color(x, y int) string {
	switch {
	case y%2 == 0 && x%2 == 0: return "R"
	case y%2 == 1 && x%2 == 1: return "B"
	case y%2 == 0:             return "G1"
	default:                   return "G2"
	}
}
