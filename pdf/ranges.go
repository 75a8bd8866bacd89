package pdf

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s`)

// ParsePageRanges parses a page range specification and returns a deduplicated,
// ascending list of 1-based page numbers.
// Supports formats: "1", "1,3", "1-5", "1,3-5,7" and the literal "all".
// Every page must lie within [1, totalPages], and N <= M for "N-M" spans.
func ParsePageRanges(spec string, totalPages int) ([]int, error) {
	if totalPages < 1 {
		return nil, validationErr("document has no pages")
	}

	// Remove all whitespace
	spec = whitespaceRegex.ReplaceAllString(spec, "")

	if spec == "" {
		return nil, validationErr("empty page specification")
	}

	if strings.EqualFold(spec, "all") {
		return IdentityPageOrder(totalPages), nil
	}

	var pageList []int
	for _, part := range strings.Split(spec, ",") {
		pages, err := parseRangeToken(part, totalPages)
		if err != nil {
			return nil, err
		}
		pageList = append(pageList, pages...)
	}

	// Sort and remove duplicates
	sort.Ints(pageList)
	deduped := []int{}
	for i, page := range pageList {
		if i == 0 || page != pageList[i-1] {
			deduped = append(deduped, page)
		}
	}

	return deduped, nil
}

// ParseRangeGroups parses a comma-separated specification into one page list
// per top-level group, preserving group order. Used by the split-by-ranges
// mode, where each group becomes its own output document. Unlike
// ParsePageRanges, groups are not merged or deduplicated across each other.
func ParseRangeGroups(spec string, totalPages int) ([][]int, error) {
	if totalPages < 1 {
		return nil, validationErr("document has no pages")
	}

	spec = whitespaceRegex.ReplaceAllString(spec, "")

	if spec == "" {
		return nil, validationErr("empty page specification")
	}

	if strings.EqualFold(spec, "all") {
		return [][]int{IdentityPageOrder(totalPages)}, nil
	}

	var groups [][]int
	for _, part := range strings.Split(spec, ",") {
		pages, err := parseRangeToken(part, totalPages)
		if err != nil {
			return nil, err
		}
		groups = append(groups, pages)
	}

	return groups, nil
}

// parseRangeToken expands a single "N" or "N-M" token, rejecting anything
// outside [1, totalPages].
func parseRangeToken(token string, totalPages int) ([]int, error) {
	if strings.Contains(token, "-") {
		// Range like "1-5"
		rangeParts := strings.Split(token, "-")
		if len(rangeParts) != 2 {
			return nil, validationErr("invalid range: %s", token)
		}

		start, err := strconv.Atoi(rangeParts[0])
		if err != nil {
			return nil, validationErr("invalid start page: %s", rangeParts[0])
		}

		end, err := strconv.Atoi(rangeParts[1])
		if err != nil {
			return nil, validationErr("invalid end page: %s", rangeParts[1])
		}

		if start > end {
			return nil, validationErr("invalid range %s: start > end (%d > %d)", token, start, end)
		}

		if start < 1 || end > totalPages {
			return nil, validationErr("range %s out of bounds: pages must be within [1, %d]", token, totalPages)
		}

		pages := make([]int, 0, end-start+1)
		for i := start; i <= end; i++ {
			pages = append(pages, i)
		}
		return pages, nil
	}

	// Single page like "3"
	pageNum, err := strconv.Atoi(token)
	if err != nil {
		return nil, validationErr("invalid page number: %s", token)
	}
	if pageNum < 1 || pageNum > totalPages {
		return nil, validationErr("page %d out of bounds: pages must be within [1, %d]", pageNum, totalPages)
	}
	return []int{pageNum}, nil
}
