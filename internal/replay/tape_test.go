package replay

import (
	"errors"
	"testing"

	"github.com/vovakirdan/cartrun/internal/core"
)

func TestTapeRecordMergesRuns(t *testing.T) {
	var tape Tape
	held := map[int]bool{3: true, 4: true, 10: true, 11: true, 12: true}
	for tick := 1; tick <= 15; tick++ {
		tape.Record(tick, held[tick])
	}

	if got := tape.String(); got != "3-5,10-13" {
		t.Errorf("String() = %q, expected %q", got, "3-5,10-13")
	}
	for tick := 0; tick <= 16; tick++ {
		if tape.Held(tick) != held[tick] {
			t.Errorf("Held(%d) = %v, expected %v", tick, tape.Held(tick), held[tick])
		}
	}
	if tape.HeldTicks() != 5 {
		t.Errorf("HeldTicks() = %d, expected 5", tape.HeldTicks())
	}
}

func TestTapeRecordIgnoresOutOfOrder(t *testing.T) {
	var tape Tape
	tape.Record(5, true)
	tape.Record(5, true)
	tape.Record(2, true)

	if got := tape.String(); got != "5-6" {
		t.Errorf("String() = %q, expected %q", got, "5-6")
	}
}

func TestTapeFrame(t *testing.T) {
	var tape Tape
	tape.Record(1, true)
	if !tape.Frame(1).Has(core.ActionJump) {
		t.Error("Frame(1) should hold jump")
	}
	if tape.Frame(2).Has(core.ActionJump) {
		t.Error("Frame(2) should not hold jump")
	}
}

func TestParseTape(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"  ", "", false},
		{"3-5", "3-5", false},
		{"3-5, 10-13", "3-5,10-13", false},
		{"3", "", true},
		{"a-5", "", true},
		{"3-b", "", true},
		{"5-5", "", true},
		{"0-2", "", true},
		{"3-5,5-7", "", true},
		{"10-12,3-5", "", true},
	}

	for _, tc := range tests {
		tape, err := ParseTape(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrBadTape) {
				t.Errorf("ParseTape(%q) error = %v, expected ErrBadTape", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTape(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got := tape.String(); got != tc.want {
			t.Errorf("ParseTape(%q).String() = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestParseTapeContinuesRecording(t *testing.T) {
	tape, err := ParseTape("3-5")
	if err != nil {
		t.Fatal(err)
	}
	tape.Record(4, true) // already covered
	tape.Record(5, true)
	if got := tape.String(); got != "3-6" {
		t.Errorf("String() = %q, expected %q", got, "3-6")
	}
}

func TestTapeReset(t *testing.T) {
	var tape Tape
	tape.Record(1, true)
	tape.Reset()
	if tape.String() != "" || tape.Held(1) {
		t.Error("Reset should empty the tape")
	}
	tape.Record(1, true)
	if tape.String() != "1-2" {
		t.Errorf("recording after Reset = %q", tape.String())
	}
}
