package information

import (
	"fmt"
	"time"
)

// FAQ is a question and answer pair shown on the information portal.
// Inactive rows stay in the table but are excluded from listings.
type FAQ struct {
	id        uint
	question  string
	answer    string
	language  Language
	sortOrder int
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewFAQ(question, answer string, language Language, sortOrder int) (*FAQ, error) {
	if question == "" {
		return nil, fmt.Errorf("question is required")
	}
	if answer == "" {
		return nil, fmt.Errorf("answer is required")
	}
	if !language.IsValid() {
		return nil, fmt.Errorf("invalid language: %s", language)
	}

	now := time.Now()
	return &FAQ{
		question:  question,
		answer:    answer,
		language:  language,
		sortOrder: sortOrder,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructFAQ(
	id uint,
	question, answer string,
	language Language,
	sortOrder int,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*FAQ, error) {
	if id == 0 {
		return nil, fmt.Errorf("faq ID cannot be zero")
	}

	return &FAQ{
		id:        id,
		question:  question,
		answer:    answer,
		language:  language,
		sortOrder: sortOrder,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (f *FAQ) ID() uint             { return f.id }
func (f *FAQ) Question() string     { return f.question }
func (f *FAQ) Answer() string       { return f.answer }
func (f *FAQ) Language() Language   { return f.language }
func (f *FAQ) SortOrder() int       { return f.sortOrder }
func (f *FAQ) IsActive() bool       { return f.isActive }
func (f *FAQ) CreatedAt() time.Time { return f.createdAt }
func (f *FAQ) UpdatedAt() time.Time { return f.updatedAt }

func (f *FAQ) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("faq ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("faq ID cannot be zero")
	}
	f.id = id
	return nil
}
