package fintrack

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyArithmetic(t *testing.T) {
	a := M(decimal.RequireFromString("12.50"), "ZAR")
	b := M(decimal.RequireFromString("7.50"), "ZAR")

	if got := a.Add(b); !got.Amount().Equal(decimal.RequireFromString("20")) || got.Currency() != "ZAR" {
		t.Errorf("Add = %s %s, want 20 ZAR", got.Amount(), got.Currency())
	}
	if got := a.Sub(b); !got.Amount().Equal(decimal.RequireFromString("5")) {
		t.Errorf("Sub = %s, want 5", got.Amount())
	}
	if !a.GreaterThan(b) || b.GreaterThan(a) {
		t.Errorf("GreaterThan: want 12.50 > 7.50 only")
	}
	if a.IsZero() {
		t.Errorf("IsZero(12.50) = true")
	}
	if zero := a.Sub(a); !zero.IsZero() {
		t.Errorf("IsZero(a - a) = false")
	}
}
