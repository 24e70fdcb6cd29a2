// Package workflow implements the interaction pattern shared by every
// record screen: live search over a list, single selection, field-level
// editing with validated commit, confirmation-gated mutation, bulk
// deletion and self-expiring notices.
//
// Screens are driven one key at a time. Each key is fully processed,
// including any storage calls, before the next one is read.
package workflow

// KeyCode identifies a key event at the input boundary.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyBackTab
	KeyEnter
	KeyEsc
	// KeySave is Ctrl+S, the explicit persist trigger.
	KeySave
)

// Key is a single discrete key event.
type Key struct {
	Code KeyCode
	Rune rune
}

// Char builds a printable character event.
func Char(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Press builds a non-character event.
func Press(code KeyCode) Key {
	return Key{Code: code}
}

// Is reports whether k is a character event for any of runes.
func (k Key) Is(runes ...rune) bool {
	if k.Code != KeyRune {
		return false
	}
	for _, r := range runes {
		if k.Rune == r {
			return true
		}
	}
	return false
}

// startsSearch is the shared binding for entering search mode.
func startsSearch(k Key) bool {
	return k.Is('/', 's', 'S')
}
