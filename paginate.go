package main

import "github.com/fintrack/fintui/fintrack"

// expensePage describes one fixed-size slice of an ordered record list.
type expensePage struct {
	// number is the effective 1-based page after clamping.
	number     int
	totalPages int
	// start/end are 0-based slice bounds into the record list.
	start int
	end   int
	// rangeStart/rangeEnd are the 1-based bounds for "showing X-Y of N";
	// rangeStart is 0 when the list is empty.
	rangeStart int
	rangeEnd   int
}

// paginate computes the page metadata for count records. A page number past
// the end clamps to the last page rather than producing an empty slice.
func paginate(count, pageNumber, pageSize int) expensePage {
	if pageSize < 1 {
		pageSize = 1
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	totalPages := (count + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	effective := pageNumber
	if effective > totalPages {
		effective = totalPages
	}

	start := (effective - 1) * pageSize
	end := effective * pageSize
	if end > count {
		end = count
	}
	if start > count {
		start = count
	}

	p := expensePage{
		number:     effective,
		totalPages: totalPages,
		start:      start,
		end:        end,
		rangeEnd:   end,
	}
	if count > 0 {
		p.rangeStart = start + 1
	}

	return p
}

// pageRows returns the records on the given page.
func pageRows(records []fintrack.Expense, p expensePage) []fintrack.Expense {
	return records[p.start:p.end]
}
