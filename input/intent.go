package input

import "github.com/gdamore/tcell/v2"

// IntentType discriminates the actions a terminal event can carry
type IntentType uint8

const (
	IntentNone   IntentType = iota
	IntentQuit              // Esc, Ctrl+C, q
	IntentLeft              // Left arrow, a, A
	IntentRight             // Right arrow, d, D
	IntentResize            // Terminal resize event
)

// Classify maps a terminal event to its intent
func Classify(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return IntentQuit
		case tcell.KeyLeft:
			return IntentLeft
		case tcell.KeyRight:
			return IntentRight
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return IntentQuit
			case 'a', 'A':
				return IntentLeft
			case 'd', 'D':
				return IntentRight
			}
		}
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}
