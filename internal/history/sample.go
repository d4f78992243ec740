package history

import (
	"time"

	"bookrec/internal/book"
)

// SampleHistory returns a demonstration history with dates relative to now.
func SampleHistory(now time.Time) ReadingHistory {
	monthsAgo := func(n int) string {
		return now.AddDate(0, -n, 0).Format(DateLayout)
	}

	return ReadingHistory{
		UserID: "user123",
		BooksRead: []ReadBook{
			{
				Title: "The Midnight Library", Author: "Matt Haig", Genre: book.Fiction,
				ISBN: "9780525559474", PageCount: 304, UserRating: 4.5, DateRead: monthsAgo(2),
				Completed: true, UserNotes: "Loved the concept of infinite possibilities.",
			},
			{
				Title: "Educated", Author: "Tara Westover", Genre: book.Biography,
				ISBN: "9780399590504", PageCount: 334, UserRating: 5.0, DateRead: monthsAgo(4),
				Completed: true, UserNotes: "Inspiring story of self-education.",
			},
			{
				Title: "Project Hail Mary", Author: "Andy Weir", Genre: book.ScienceFiction,
				ISBN: "9780593135204", PageCount: 496, UserRating: 4.8, DateRead: monthsAgo(1),
				Completed: true, UserNotes: "Excellent sci-fi with great scientific details.",
			},
			{
				Title: "Atomic Habits", Author: "James Clear", Genre: book.SelfHelp,
				ISBN: "9780735211292", PageCount: 320, UserRating: 4.2, DateRead: monthsAgo(3),
				Completed: true, UserNotes: "Practical advice on habit formation.",
			},
			{
				Title: "The Silent Patient", Author: "Alex Michaelides", Genre: book.Thriller,
				ISBN: "9781250301697", PageCount: 336, UserRating: 3.9, DateRead: monthsAgo(5),
				Completed: true, UserNotes: "Surprising twist at the end.",
			},
		},
		GenrePreferences: map[book.Genre]int{
			book.Fiction:        12,
			book.ScienceFiction: 8,
			book.Thriller:       7,
			book.Biography:      5,
			book.SelfHelp:       3,
		},
		FavoriteAuthors: []string{"Andy Weir", "Matt Haig", "Tara Westover", "James Clear"},
		RatingHistory: map[string]float64{
			"The Midnight Library": 4.5,
			"Educated":             5.0,
			"Project Hail Mary":    4.8,
			"Atomic Habits":        4.2,
			"The Silent Patient":   3.9,
		},
		LastUpdated:          now.Format(DateLayout),
		AverageReadingSpeed:  45.0,
		AverageBooksPerMonth: 3,
	}
}
