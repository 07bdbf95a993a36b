package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var ErrMalformedAccelerator = errors.New("malformed accelerator")

// Accelerator is a key chord such as "cmdOrControl+S" or "Shift+F12".
// It is decorative: activation always goes through the entry's command.
type Accelerator string

// Modifier is a bit set of chord modifiers.
type Modifier uint8

const (
	// ModPrimary is the platform's primary modifier (Cmd on macOS, Ctrl elsewhere).
	ModPrimary Modifier = 1 << iota
	ModSuper
	ModControl
	ModShift
	ModAlt
)

// Chord is a parsed accelerator.
type Chord struct {
	Modifiers Modifier
	Key       string
}

var modifierTokens = map[string]Modifier{
	"cmdorcontrol":     ModPrimary,
	"cmdorctrl":        ModPrimary,
	"commandorcontrol": ModPrimary,
	"cmd":              ModSuper,
	"command":          ModSuper,
	"super":            ModSuper,
	"ctrl":             ModControl,
	"control":          ModControl,
	"shift":            ModShift,
	"alt":              ModAlt,
	"option":           ModAlt,
}

var namedKeys = map[string]string{
	"enter":     "Return",
	"return":    "Return",
	"escape":    "Escape",
	"esc":       "Escape",
	"tab":       "Tab",
	"space":     "Space",
	"backspace": "BackSpace",
	"delete":    "Delete",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"home":      "Home",
	"end":       "End",
	"pageup":    "Prior",
	"pagedown":  "Next",
}

// Parse splits the accelerator into modifiers and a single key. The key is
// normalised: letters upper-cased, named keys mapped to their canonical name.
func (a Accelerator) Parse() (Chord, error) {
	if a == "" {
		return Chord{}, fmt.Errorf("%w: empty", ErrMalformedAccelerator)
	}
	tokens := strings.Split(string(a), "+")
	// "cmdOrControl++" binds the plus key itself.
	if strings.HasSuffix(string(a), "++") {
		tokens = append(tokens[:len(tokens)-2], "+")
	}

	var chord Chord
	for i, tok := range tokens {
		if tok == "" {
			return Chord{}, fmt.Errorf("%w: %q has an empty token", ErrMalformedAccelerator, string(a))
		}
		if i < len(tokens)-1 {
			mod, ok := modifierTokens[strings.ToLower(tok)]
			if !ok {
				return Chord{}, fmt.Errorf("%w: %q: unknown modifier %q", ErrMalformedAccelerator, string(a), tok)
			}
			if chord.Modifiers&mod != 0 {
				return Chord{}, fmt.Errorf("%w: %q: repeated modifier %q", ErrMalformedAccelerator, string(a), tok)
			}
			chord.Modifiers |= mod
			continue
		}
		key, err := normaliseKey(tok)
		if err != nil {
			return Chord{}, fmt.Errorf("%w: %q: %v", ErrMalformedAccelerator, string(a), err)
		}
		chord.Key = key
	}
	return chord, nil
}

// Validate reports whether the accelerator parses.
func (a Accelerator) Validate() error {
	_, err := a.Parse()
	return err
}

func normaliseKey(tok string) (string, error) {
	if utf8.RuneCountInString(tok) == 1 {
		return strings.ToUpper(tok), nil
	}
	lower := strings.ToLower(tok)
	if name, ok := namedKeys[lower]; ok {
		return name, nil
	}
	if lower[0] == 'f' {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 24 {
			return "F" + strconv.Itoa(n), nil
		}
	}
	if _, ok := modifierTokens[lower]; ok {
		return "", fmt.Errorf("missing key after modifier %q", tok)
	}
	return "", fmt.Errorf("unknown key %q", tok)
}
