package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"bookrec/internal/book"
)

// DateLayout is the format of every date in a reading history file.
const DateLayout = "2006-01-02"

var ErrInvalidHistory = errors.New("invalid reading history")

// ReadingHistory is what a reader has read and how they rated it.
type ReadingHistory struct {
	UserID               string             `json:"userId" yaml:"userId" validate:"notblank"`
	BooksRead            []ReadBook         `json:"booksRead" yaml:"booksRead" validate:"dive"`
	GenrePreferences     map[book.Genre]int `json:"genrePreferences" yaml:"genrePreferences" validate:"dive,keys,genre,endkeys,gte=0"`
	FavoriteAuthors      []string           `json:"favoriteAuthors" yaml:"favoriteAuthors" validate:"dive,notblank"`
	RatingHistory        map[string]float64 `json:"ratingHistory" yaml:"ratingHistory" validate:"dive,gte=0,lte=5"`
	LastUpdated          string             `json:"lastUpdated" yaml:"lastUpdated" validate:"omitempty,datetime=2006-01-02"`
	AverageReadingSpeed  float64            `json:"averageReadingSpeed" yaml:"averageReadingSpeed" validate:"gte=0"`
	AverageBooksPerMonth int                `json:"averageBooksPerMonth" yaml:"averageBooksPerMonth" validate:"gte=0"`
}

// ReadBook is one entry of a reading history.
type ReadBook struct {
	Title      string     `json:"title" yaml:"title" validate:"notblank"`
	Author     string     `json:"author" yaml:"author" validate:"notblank"`
	Genre      book.Genre `json:"genre" yaml:"genre" validate:"required,genre"`
	ISBN       string     `json:"isbn" yaml:"isbn"`
	PageCount  int        `json:"pageCount" yaml:"pageCount" validate:"gte=0"`
	UserRating float64    `json:"userRating" yaml:"userRating" validate:"gte=0,lte=5"`
	DateRead   string     `json:"dateRead" yaml:"dateRead" validate:"datetime=2006-01-02"`
	Completed  bool       `json:"completed" yaml:"completed"`
	UserNotes  string     `json:"userNotes,omitempty" yaml:"userNotes,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return book.Genre(fl.Field().String()).Valid()
	})
	return v
}

// Validate checks the history and reports every failing field.
func (h ReadingHistory) Validate() error {
	err := validate.Struct(h)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidHistory, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidHistory, strings.Join(msgs, "; "))
}

// Load reads a reading history from a YAML (.yaml, .yml) or JSON file.
func Load(path string) (ReadingHistory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadingHistory{}, fmt.Errorf("read %s: %w", path, err)
	}

	var h ReadingHistory
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &h)
	default:
		err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &h)
	}
	if err != nil {
		return ReadingHistory{}, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := h.Validate(); err != nil {
		return ReadingHistory{}, err
	}
	return h, nil
}
