package sim

import (
	"math"
	"testing"
)

func TestConstantKernel_AlwaysOne(t *testing.T) {
	k := ConstantKernel{}
	for _, pair := range [][2]int{{1, 1}, {1, 1000}, {999, 2}} {
		if got := k.Eval(pair[0], pair[1]); got != 1 {
			t.Errorf("Eval(%d,%d) = %v, want 1", pair[0], pair[1], got)
		}
	}
}

func TestMultiplicativeKernel_Symmetric(t *testing.T) {
	k := MultiplicativeKernel{C: 1}
	if got, want := k.Eval(3, 5), 15.0; got != want {
		t.Errorf("Eval(3,5) = %v, want %v", got, want)
	}
	if k.Eval(3, 5) != k.Eval(5, 3) {
		t.Error("multiplicative kernel not symmetric")
	}
}

func TestMultiplicativeKernel_Normalization(t *testing.T) {
	k := MultiplicativeKernel{C: 1e5}
	got := k.Eval(100, 100)
	want := 100.0 * 100.0 / 1e5
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Eval(100,100) = %v, want %v", got, want)
	}
}

func TestBallisticKernel_Symmetric(t *testing.T) {
	k := BallisticKernel{}
	for _, pair := range [][2]int{{1, 1}, {2, 5}, {100, 1}} {
		a, b := pair[0], pair[1]
		if math.Abs(k.Eval(a, b)-k.Eval(b, a)) > 1e-12 {
			t.Errorf("ballistic kernel not symmetric for (%d,%d)", a, b)
		}
	}
}

func TestBallisticKernel_Monomer(t *testing.T) {
	k := BallisticKernel{}
	got := k.Eval(1, 1)
	want := 4.0 * math.Sqrt(2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Eval(1,1) = %v, want %v", got, want)
	}
}

func TestBrownianKernel_Symmetric(t *testing.T) {
	k := BrownianKernel{Alpha: 0.5}
	for _, pair := range [][2]int{{1, 1}, {2, 7}, {50, 3}} {
		a, b := pair[0], pair[1]
		if math.Abs(k.Eval(a, b)-k.Eval(b, a)) > 1e-12 {
			t.Errorf("brownian kernel not symmetric for (%d,%d)", a, b)
		}
	}
}

func TestBrownianKernel_Monomer(t *testing.T) {
	k := BrownianKernel{Alpha: 0.3}
	if got, want := k.Eval(1, 1), 2.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Eval(1,1) = %v, want %v", got, want)
	}
}

func TestNewKernel_Variants(t *testing.T) {
	tests := []struct {
		name    string
		params  KernelParams
		wantErr bool
	}{
		{"constant", KernelParams{}, false},
		{"multiplicative", KernelParams{MultiplicativeC: 1e7}, false},
		{"multiplicative", KernelParams{}, false}, // default C
		{"ballistic", KernelParams{}, false},
		{"brownian", KernelParams{BrownianAlpha: 0.5}, false},
		{"brownian", KernelParams{BrownianAlpha: 0}, true},
		{"brownian", KernelParams{BrownianAlpha: 1}, true},
		{"brownian", KernelParams{BrownianAlpha: -0.2}, true},
		{"unknown-kernel", KernelParams{}, true},
	}

	for _, tt := range tests {
		k, err := NewKernel(tt.name, tt.params)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewKernel(%q, %+v) expected error, got nil", tt.name, tt.params)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewKernel(%q, %+v) unexpected error: %v", tt.name, tt.params, err)
		}
		if k == nil {
			t.Errorf("NewKernel(%q, %+v) returned nil kernel with no error", tt.name, tt.params)
		}
	}
}

func TestMultiplicativeKernel_DefaultConstant(t *testing.T) {
	k, err := NewKernel("multiplicative", KernelParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mk, ok := k.(MultiplicativeKernel)
	if !ok {
		t.Fatalf("expected MultiplicativeKernel, got %T", k)
	}
	if mk.C != 1e5 {
		t.Errorf("default C = %v, want 1e5", mk.C)
	}
}
