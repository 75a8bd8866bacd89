package pdf

import "math/rand"

// ValidatePageOrder checks that order is a full permutation of 1..totalPages.
// This is stricter than range parsing: extraction allows subsets, reordering
// requires every page to appear exactly once.
func ValidatePageOrder(order []int, totalPages int) error {
	if len(order) == 0 {
		return validationErr("page order is empty")
	}
	if len(order) != totalPages {
		return validationErr("page order has %d entries, document has %d pages", len(order), totalPages)
	}

	seen := make(map[int]bool, len(order))
	for _, page := range order {
		if page < 1 || page > totalPages {
			return validationErr("page %d out of bounds: pages must be within [1, %d]", page, totalPages)
		}
		if seen[page] {
			return validationErr("duplicate page %d in order", page)
		}
		seen[page] = true
	}

	return nil
}

// IdentityPageOrder returns [1..totalPages].
func IdentityPageOrder(totalPages int) []int {
	order := make([]int, totalPages)
	for i := range order {
		order[i] = i + 1
	}
	return order
}

// ReversedPageOrder returns [totalPages..1].
func ReversedPageOrder(totalPages int) []int {
	order := make([]int, totalPages)
	for i := range order {
		order[i] = totalPages - i
	}
	return order
}

// ShuffledPageOrder returns a uniform random permutation of [1..totalPages]
// using a Fisher-Yates shuffle.
func ShuffledPageOrder(totalPages int) []int {
	order := IdentityPageOrder(totalPages)
	for i := len(order) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// IsReorderNecessary reports whether order differs from the identity
// sequence at any position.
func IsReorderNecessary(order []int) bool {
	for i, page := range order {
		if page != i+1 {
			return true
		}
	}
	return false
}
