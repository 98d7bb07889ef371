package editvalue

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type inner struct {
	Speed float32
}

type sample struct {
	inner
	Name    string
	Color   rl.Vector3 `edit:"Tint"`
	Hidden  bool       `edit:"-"`
	Count   int
	private uint8
	Weight  float64
}

func TestFields(t *testing.T) {
	s := &sample{Name: "crate", Weight: 2}
	fields := Fields(s)

	want := []string{"Speed", "Name", "Tint", "Weight"}
	if len(fields) != len(want) {
		t.Fatalf("Expected %d fields, got %d: %v", len(want), len(fields), fields)
	}
	for i, label := range want {
		if fields[i].Label != label {
			t.Errorf("Field %d: expected '%s', got '%s'", i, label, fields[i].Label)
		}
	}

	// Refs point at the live struct
	if err := fields[1].Ref.Write(ValueOf("barrel")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Name != "barrel" {
		t.Errorf("Expected write through field ref, got '%s'", s.Name)
	}
	if err := fields[0].Ref.Write(ValueOf(float32(4))); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Speed != 4 {
		t.Errorf("Expected embedded field write, got %f", s.Speed)
	}
}

func TestFieldsRejectsNonStructPointers(t *testing.T) {
	if Fields(sample{}) != nil {
		t.Error("Non-pointer target should yield no fields")
	}
	var nilSample *sample
	if Fields(nilSample) != nil {
		t.Error("Nil pointer should yield no fields")
	}
	x := 3
	if Fields(&x) != nil {
		t.Error("Pointer to non-struct should yield no fields")
	}
}
