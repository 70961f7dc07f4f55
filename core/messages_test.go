package core

import (
	"errors"
	"testing"
)

func TestStatusCmdCarriesText(t *testing.T) {
	msg, ok := StatusCmd("saved")().(StatusMsg)
	if !ok || msg.Text != "saved" || msg.IsErr {
		t.Fatalf("unexpected status message: %+v", msg)
	}
}

func TestErrorCmdMarksStatusAsError(t *testing.T) {
	msg, ok := ErrorCmd(errors.New("disk full"))().(StatusMsg)
	if !ok || !msg.IsErr || msg.Text != "disk full" {
		t.Fatalf("unexpected error message: %+v", msg)
	}

	msg, ok = ErrorCmd(nil)().(StatusMsg)
	if !ok || msg.IsErr || msg.Text != "" {
		t.Fatalf("nil error must clear the status, got %+v", msg)
	}
}
