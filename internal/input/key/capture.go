package key

import (
	"github.com/gdamore/tcell/v2"
)

// tcellKeyMap maps tcell special keys to Key values.
var tcellKeyMap = map[tcell.Key]Key{
	tcell.KeyEscape:    KeyEscape,
	tcell.KeyEnter:     KeyEnter,
	tcell.KeyTab:       KeyTab,
	tcell.KeyBackspace: KeyBackspace,
	tcell.KeyDelete:    KeyDelete,
	tcell.KeyInsert:    KeyInsert,
	tcell.KeyHome:      KeyHome,
	tcell.KeyEnd:       KeyEnd,
	tcell.KeyPgUp:      KeyPageUp,
	tcell.KeyPgDn:      KeyPageDown,
	tcell.KeyUp:        KeyUp,
	tcell.KeyDown:      KeyDown,
	tcell.KeyLeft:      KeyLeft,
	tcell.KeyRight:     KeyRight,
	tcell.KeyF1:        KeyF1,
	tcell.KeyF2:        KeyF2,
	tcell.KeyF3:        KeyF3,
	tcell.KeyF4:        KeyF4,
	tcell.KeyF5:        KeyF5,
	tcell.KeyF6:        KeyF6,
	tcell.KeyF7:        KeyF7,
	tcell.KeyF8:        KeyF8,
	tcell.KeyF9:        KeyF9,
	tcell.KeyF10:       KeyF10,
	tcell.KeyF11:       KeyF11,
	tcell.KeyF12:       KeyF12,
	tcell.KeyBackspace2: KeyBackspace,
}

// FromTcell translates a terminal key event into a Combo.
// Ctrl-letter control codes are unfolded into Ctrl plus the letter.
// Returns a zero Combo for events that cannot form a shortcut chord.
func FromTcell(ev *tcell.EventKey) Combo {
	if ev == nil {
		return Combo{}
	}

	mods := fromTcellMods(ev.Modifiers())

	if k, ok := tcellKeyMap[ev.Key()]; ok {
		return NewSpecialCombo(k, mods)
	}

	// Ctrl+A .. Ctrl+Z arrive as control codes
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := rune('a' + (ev.Key() - tcell.KeyCtrlA))
		return NewRuneCombo(r, mods.With(ModCtrl))
	}

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return Combo{Key: KeySpace, Modifiers: mods}
		}
		return NewRuneCombo(r, mods)
	}

	return Combo{}
}

func fromTcellMods(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}
	return mods
}
