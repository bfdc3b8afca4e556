package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/P1NHE4D/SpaceInvadersClient/network"
)

func TestCleanNames(t *testing.T) {
	names, err := CleanNames([]string{" ann ", "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if names[0] != "ann" || names[1] != "bob" {
		t.Errorf("names = %q", names)
	}

	_, err = CleanNames([]string{"ann", ""})
	if !errors.Is(err, network.ErrInvalidName) {
		t.Fatalf("err = %v, want ErrInvalidName", err)
	}
	if !strings.HasPrefix(err.Error(), "player 2:") {
		t.Errorf("err = %q, want it to name player 2", err)
	}
}
