package flex

import (
	"math"
	"testing"
)

func TestResolvePoint(t *testing.T) {
	got, ok := resolve(Point(10), 100)
	if !ok || got != 10 {
		t.Errorf("resolve(Point(10), 100) = %v, %v; want 10, true", got, ok)
	}
}

func TestResolvePercentDefiniteBasis(t *testing.T) {
	got, ok := resolve(Percent(50), 200)
	if !ok || got != 100 {
		t.Errorf("resolve(Percent(50), 200) = %v, %v; want 100, true", got, ok)
	}
}

func TestResolvePercentIndefiniteBasis(t *testing.T) {
	_, ok := resolve(Percent(50), math.Inf(1))
	if ok {
		t.Errorf("resolve(Percent(50), +Inf) reported definite, want indefinite")
	}
}

func TestResolveAutoIsIndefinite(t *testing.T) {
	_, ok := resolve(Auto, 100)
	if ok {
		t.Errorf("resolve(Auto, 100) reported definite, want indefinite")
	}
}

func TestValueEqual(t *testing.T) {
	if !Point(5).Equal(Point(5)) {
		t.Errorf("Point(5).Equal(Point(5)) = false, want true")
	}
	if Point(5).Equal(Point(6)) {
		t.Errorf("Point(5).Equal(Point(6)) = true, want false")
	}
	if !Auto.Equal(Auto) {
		t.Errorf("Auto.Equal(Auto) = false, want true")
	}
	if Auto.Equal(Undefined) {
		t.Errorf("Auto.Equal(Undefined) = true, want false")
	}
}

func TestClampSize(t *testing.T) {
	cases := []struct {
		size, min, max, want float64
	}{
		{5, 0, math.Inf(1), 5},
		{-5, 0, math.Inf(1), 0},
		{50, 0, 20, 20},
		{10, 20, 30, 20},
	}
	for _, c := range cases {
		got := clampSize(c.size, c.min, c.max)
		if got != c.want {
			t.Errorf("clampSize(%v, %v, %v) = %v, want %v", c.size, c.min, c.max, got, c.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		in      string
		want    Value
		wantErr bool
	}{
		{"auto", Auto, false},
		{"content", ContentKeyword, false},
		{"", Undefined, false},
		{"10", Point(10), false},
		{"-3.5", Point(-3.5), false},
		{"50%", Percent(50), false},
		{"abc", Undefined, true},
		{"%", Undefined, true},
	}
	for _, c := range cases {
		got, err := ParseValue(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseValue(%q) err = nil, want error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseValue(%q) unexpected error: %v", c.in, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseValue(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestAxisViewRow(t *testing.T) {
	n := NewNode()
	av := newAxisView(n)
	if !av.isMainAxisRow() {
		t.Errorf("default flexDirection: isMainAxisRow() = false, want true")
	}
	if av.isMainAxisReversed() {
		t.Errorf("default flexDirection: isMainAxisReversed() = true, want false")
	}
	w, h := av.composeWH(10, 20)
	if w != 10 || h != 20 {
		t.Errorf("composeWH(10, 20) on row axis = (%v, %v), want (10, 20)", w, h)
	}
}

func TestAxisViewColumn(t *testing.T) {
	n := NewNode()
	n.SetFlexDirection(Column)
	av := newAxisView(n)
	if av.isMainAxisRow() {
		t.Errorf("column flexDirection: isMainAxisRow() = true, want false")
	}
	w, h := av.composeWH(10, 20)
	if w != 20 || h != 10 {
		t.Errorf("composeWH(10, 20) on column axis = (%v, %v), want (20, 10)", w, h)
	}
}

func TestAxisViewRowRTLIsReversed(t *testing.T) {
	n := NewNode()
	n.SetFlexDirection(Row)
	n.SetDirection(RTL)
	av := newAxisView(n)
	if !av.isMainAxisReversed() {
		t.Errorf("row + RTL: isMainAxisReversed() = false, want true")
	}
}
