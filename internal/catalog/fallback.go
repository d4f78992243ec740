package catalog

import "bookrec/internal/book"

// FallbackBooks returns the fixed books used when the configured source
// cannot be loaded.
func FallbackBooks() []book.Book {
	return []book.Book{
		{
			Title:         "The Midnight Library",
			Author:        "Matt Haig",
			Genre:         book.Fiction,
			ISBN:          "9780525559474",
			PageCount:     304,
			Description:   "Between life and death there is a library, and within that library, the shelves go on forever.",
			AverageRating: 4.5,
		},
		{
			Title:         "Project Hail Mary",
			Author:        "Andy Weir",
			Genre:         book.ScienceFiction,
			ISBN:          "9780593135204",
			PageCount:     496,
			Description:   "A lone astronaut must save the earth from disaster.",
			AverageRating: 4.8,
		},
		{
			Title:         "The Seven Husbands of Evelyn Hugo",
			Author:        "Taylor Jenkins Reid",
			Genre:         book.Romance,
			ISBN:          "9781501161933",
			PageCount:     400,
			Description:   "A reclusive Hollywood icon reveals her secrets to an unknown journalist.",
			AverageRating: 4.6,
		},
		{
			Title:         "Educated",
			Author:        "Tara Westover",
			Genre:         book.NonFiction,
			ISBN:          "9780399590504",
			PageCount:     334,
			Description:   "A memoir about education, family, and the struggle for self-invention.",
			AverageRating: 4.4,
		},
	}
}
