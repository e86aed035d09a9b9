package tool

import (
	"errors"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	want := []Kind{Select, NodeEdit, Pen, Line, Curve, Measure}
	diff(t, want, r.Kinds())

	ctx := newFakeContext()
	for _, k := range want {
		tl, err := r.New(k, ctx)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, k, tl.Kind())
	}

	if _, err := r.New("lasso", ctx); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("got %v, want ErrUnknownTool", err)
	}
}

func TestRegistryReplace(t *testing.T) {
	r := DefaultRegistry()
	var built bool
	r.Register(Measure, func(ctx Context) Tool {
		built = true
		return NewMeasureTool(ctx)
	})
	diff(t, 6, len(r.Kinds()))
	if _, err := r.New(Measure, newFakeContext()); err != nil {
		t.Fatal(err)
	}
	diff(t, true, built)

	kinds := r.Kinds()
	kinds[0] = "changed"
	diff(t, Select, r.Kinds()[0])
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		err  bool
	}{
		{"select", Select, false},
		{" Node-Edit ", NodeEdit, false},
		{"PEN", Pen, false},
		{"measure", Measure, false},
		{"", "", true},
		{"lasso", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseKind(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownTool) {
			t.Errorf("ParseKind(%q): got %v, want ErrUnknownTool", tt.in, err)
		}
		diff(t, tt.want, got)
	}
}

func TestShortcuts(t *testing.T) {
	for _, k := range DefaultRegistry().Kinds() {
		s := Shortcut(k)
		if s == "" {
			t.Errorf("%s has no shortcut", k)
			continue
		}
		got, ok := KindForShortcut(s)
		diff(t, true, ok)
		diff(t, k, got)
	}

	got, ok := KindForShortcut("l")
	diff(t, true, ok)
	diff(t, Line, got)
	_, ok = KindForShortcut("z")
	diff(t, false, ok)
	diff(t, "", Shortcut("lasso"))
}
