package demo

import (
	"reflect"
	"testing"
	"time"

	"expenses/internal/core"
)

var today = time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC)

func TestExpenses_Valid(t *testing.T) {
	items := Expenses(42, 25, today)
	if len(items) != 25 {
		t.Fatalf("len = %d, want 25", len(items))
	}
	earliest := today.Add(-spread - 24*time.Hour)
	for i, in := range items {
		if err := in.Validate(); err != nil {
			t.Fatalf("item %d invalid: %v (%+v)", i, err, in)
		}
		d, err := time.Parse(core.ISODateLayout, in.Date)
		if err != nil {
			t.Fatalf("item %d date %q: %v", i, in.Date, err)
		}
		if d.After(today) || d.Before(earliest) {
			t.Errorf("item %d date %s outside window", i, in.Date)
		}
		if in.Amount.Exponent() < -2 {
			t.Errorf("item %d amount %s has more than two decimals", i, in.Amount)
		}
	}
}

func TestExpenses_Deterministic(t *testing.T) {
	a := Expenses(7, 10, today)
	b := Expenses(7, 10, today)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different data")
	}
	c := Expenses(8, 10, today)
	if reflect.DeepEqual(a, c) {
		t.Fatalf("different seeds produced identical data")
	}
}

func TestSeeder_AdvancesSeed(t *testing.T) {
	seed := Seeder(100, 3, func() time.Time { return today })

	first, second := seed(), seed()
	if !reflect.DeepEqual(first, Expenses(100, 3, today)) {
		t.Errorf("first call did not use base seed")
	}
	if !reflect.DeepEqual(second, Expenses(101, 3, today)) {
		t.Errorf("second call did not use base+1")
	}
}
