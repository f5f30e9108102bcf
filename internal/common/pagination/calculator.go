package pagination

// CalculateOffset calculates the database OFFSET value based on page number and size.
// Page numbers are 0-based, so page 0 has offset 0.
//
// Formula: offset = page * size
//
// Examples:
//   - Page 0, Size 10 -> Offset 0
//   - Page 1, Size 10 -> Offset 10
//   - Page 2, Size 25 -> Offset 50
func CalculateOffset(page, size int) int {
	return page * size
}

// CalculateTotalPages calculates the total number of pages based on total items and size.
// Uses ceiling division to ensure all items are included.
//
// Special cases:
//   - If total is 0, returns 0 (an empty result set has no pages)
//
// Examples:
//   - Total 0, Size 10 -> 0 pages
//   - Total 10, Size 10 -> 1 page
//   - Total 25, Size 10 -> 3 pages
func CalculateTotalPages(total int64, size int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// IsLastPage reports whether the given 0-based page is the final page for
// the total. An empty result set counts its only page as last.
func IsLastPage(page int, total int64, size int) bool {
	totalPages := CalculateTotalPages(total, size)
	return page >= totalPages-1
}
