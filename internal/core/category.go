package core

import (
	"fmt"
	"strings"
)

// Category is one member of the fixed expense enumeration.
type Category string

const (
	Food           Category = "Food"
	Transportation Category = "Transportation"
	Entertainment  Category = "Entertainment"
	Shopping       Category = "Shopping"
	Other          Category = "Other"
)

// DefaultCategory preselects new drafts.
const DefaultCategory = Food

var categories = []Category{Food, Transportation, Entertainment, Shopping, Other}

// Categories returns the enumeration in declaration order. Every selector in
// the UI is built from this list.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory matches s case-insensitively against the enumeration.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, v := range categories {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}
