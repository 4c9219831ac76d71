package key

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Combo
	}{
		{
			name: "plain rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone),
			want: NewRuneCombo('j', ModNone),
		},
		{
			name: "shifted rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'J', tcell.ModShift),
			want: NewRuneCombo('j', ModShift),
		},
		{
			name: "ctrl letter control code",
			ev:   tcell.NewEventKey(tcell.KeyCtrlK, 0, tcell.ModCtrl),
			want: NewRuneCombo('k', ModCtrl),
		},
		{
			name: "arrow with shift",
			ev:   tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift),
			want: NewSpecialCombo(KeyLeft, ModShift),
		},
		{
			name: "function key",
			ev:   tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone),
			want: NewSpecialCombo(KeyF5, ModNone),
		},
		{
			name: "space",
			ev:   tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
			want: NewSpecialCombo(KeySpace, ModNone),
		},
		{
			name: "enter wins over ctrl-m",
			ev:   tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			want: NewSpecialCombo(KeyEnter, ModNone),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTcell(tt.ev)
			if !got.Equals(tt.want) {
				t.Errorf("FromTcell = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFromTcellNil(t *testing.T) {
	if got := FromTcell(nil); !got.IsZero() {
		t.Errorf("FromTcell(nil) = %#v, want zero", got)
	}
}
