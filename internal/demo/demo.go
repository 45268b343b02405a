// Package demo generates plausible sample expenses for new sessions.
package demo

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"expenses/internal/core"
)

// spread is how far back generated dates reach.
const spread = 30 * 24 * time.Hour

type amountRange struct{ min, max float64 }

var ranges = map[core.Category]amountRange{
	core.Food:           {4, 60},
	core.Transportation: {2, 45},
	core.Entertainment:  {8, 120},
	core.Shopping:       {10, 250},
	core.Other:          {1, 80},
}

// Expenses returns n expenses generated from seed, dated within the 30 days
// before today. The same seed, n and today always yield the same slice.
func Expenses(seed uint64, n int, today time.Time) []core.ExpenseInput {
	f := gofakeit.New(seed)
	cats := core.Categories()
	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	start := end.Add(-spread)

	out := make([]core.ExpenseInput, 0, n)
	for i := 0; i < n; i++ {
		c := cats[f.IntRange(0, len(cats)-1)]
		r := ranges[c]
		out = append(out, core.ExpenseInput{
			Description: describe(f, c),
			Amount:      decimal.NewFromFloat(f.Float64Range(r.min, r.max)).Round(2),
			Category:    c,
			Date:        f.DateRange(start, end).Format(core.ISODateLayout),
		})
	}
	return out
}

func describe(f *gofakeit.Faker, c core.Category) string {
	switch c {
	case core.Food:
		return f.RandomString([]string{f.Lunch(), f.Dinner(), f.Snack(), f.Breakfast()})
	case core.Transportation:
		return fmt.Sprintf("%s to %s", f.RandomString([]string{"Taxi", "Train", "Bus", "Fuel"}), f.City())
	case core.Entertainment:
		return fmt.Sprintf("%s tickets", f.RandomString([]string{"Concert", "Cinema", "Theatre", "Museum"}))
	case core.Shopping:
		return f.ProductName()
	default:
		return fmt.Sprintf("%s %s", f.Company(), f.RandomString([]string{"subscription", "fee", "donation"}))
	}
}

// Seeder returns a seed function giving each call the next seed after base,
// so sessions differ from each other while a restart replays the same data.
func Seeder(base uint64, n int, clock func() time.Time) func() []core.ExpenseInput {
	if clock == nil {
		clock = time.Now
	}
	var next atomic.Uint64
	return func() []core.ExpenseInput {
		return Expenses(base+next.Add(1)-1, n, clock())
	}
}
