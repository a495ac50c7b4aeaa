package tearsheet

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1234.56, "USD"), "$1,234.56"},
		{M(-50, "USD"), "-$50.00"},
		{M(1234.56, "EUR"), "€1.234,56"},
		{M(0, "USD"), "$0.00"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(100, "USD").SignedString(); got != "+$100.00" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString() = %q", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(100, "EUR")
	b := M(25.5, "EUR")

	if got := a.Add(b); !got.Equal(M(125.5, "EUR")) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equal(M(74.5, "EUR")) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(1.1); !got.Equal(M(110, "EUR")) {
		t.Errorf("Scale = %v", got)
	}
	if !a.Sub(a).IsZero() {
		t.Error("a - a should be zero")
	}
	if !M(-1, "EUR").IsNegative() {
		t.Error("IsNegative")
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// the zero Money has no currency and adopts its operand's
	var zero Money
	got := zero.Add(M(10, "EUR"))
	if got.Currency() != "EUR" {
		t.Errorf("Currency = %q, want EUR", got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("mixing currencies should panic")
		}
	}()
	M(1, "EUR").Add(M(1, "USD"))
}
