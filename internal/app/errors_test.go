package app

import (
	"errors"
	"testing"
)

func TestOperationErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			name: "op only",
			err:  NewOperationError("save-shortcuts", "", nil),
			want: "save-shortcuts",
		},
		{
			name: "op and target",
			err:  NewOperationError("save-shortcuts", "/tmp/s.json", nil),
			want: "save-shortcuts /tmp/s.json",
		},
		{
			name: "wrapped cause",
			err:  NewOperationError("load-shortcuts", "x.json", errors.New("boom")),
			want: "load-shortcuts x.json: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewOperationError("save-shortcuts", "s.json", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is does not see the wrapped cause")
	}

	var op *OperationError
	if !errors.As(err, &op) {
		t.Fatal("errors.As failed")
	}
	if op.Op != "save-shortcuts" {
		t.Errorf("Op = %q, want save-shortcuts", op.Op)
	}
}
