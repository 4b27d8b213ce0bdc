package arabicforms

import (
	"reflect"
	"testing"
)

func TestShapesDecisionTable(t *testing.T) {
	cases := []struct {
		input string
		want  []Shape
	}{
		{"", []Shape{}},
		{"ب", []Shape{Isolated}},
		{"بب", []Shape{Initial, Final}},
		{"ببب", []Shape{Initial, Medial, Final}},
		{"اب", []Shape{Isolated, Isolated}},          // alef never joins onward
		{"باب", []Shape{Initial, Final, Isolated}}, // no medial alef exists
		{"ب ب", []Shape{Isolated, None, Isolated}},
		{"xب", []Shape{None, Isolated}},
		{"ءء", []Shape{Isolated, Isolated}}, // hamza joins neither way
	}
	for _, c := range cases {
		got := Shapes(c.input)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Shapes(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestShapesHarakatBreakLink(t *testing.T) {
	// A combining mark is not a letter. It passes through and interrupts
	// the joining link of its neighbors.
	got := Shapes("بًب")
	want := []Shape{Isolated, None, Isolated}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestShapesTatweelJoins(t *testing.T) {
	got := Shapes("بـب")
	want := []Shape{Initial, Medial, Final}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestShapeString(t *testing.T) {
	names := map[Shape]string{
		None:     "none",
		Isolated: "isolated",
		Initial:  "initial",
		Medial:   "medial",
		Final:    "final",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("Shape(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}
