// Package information holds the read-only content of the information
// portal: available benefits and frequently asked questions, maintained
// per language.
package information

import (
	"fmt"
	"time"
)

// Language identifies the content locale.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

var validLanguages = map[Language]bool{
	LanguageEnglish: true,
	LanguageArabic:  true,
}

func (l Language) IsValid() bool { return validLanguages[l] }
func (l Language) String() string { return string(l) }

func NewLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.IsValid() {
		return "", fmt.Errorf("invalid language: %s", s)
	}
	return l, nil
}

// Benefit describes a support program beneficiaries can learn about. The
// slug identifies the same program across languages; inactive rows are
// kept in the table but excluded from the portal.
type Benefit struct {
	id          uint
	slug        string
	title       string
	description string
	category    string
	language    Language
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBenefit(slug, title, description, category string, language Language) (*Benefit, error) {
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if !language.IsValid() {
		return nil, fmt.Errorf("invalid language: %s", language)
	}

	now := time.Now()
	return &Benefit{
		slug:        slug,
		title:       title,
		description: description,
		category:    category,
		language:    language,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBenefit(
	id uint,
	slug, title, description, category string,
	language Language,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Benefit, error) {
	if id == 0 {
		return nil, fmt.Errorf("benefit ID cannot be zero")
	}

	return &Benefit{
		id:          id,
		slug:        slug,
		title:       title,
		description: description,
		category:    category,
		language:    language,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (b *Benefit) ID() uint             { return b.id }
func (b *Benefit) Slug() string         { return b.slug }
func (b *Benefit) Title() string        { return b.title }
func (b *Benefit) Description() string  { return b.description }
func (b *Benefit) Category() string     { return b.category }
func (b *Benefit) Language() Language   { return b.language }
func (b *Benefit) IsActive() bool       { return b.isActive }
func (b *Benefit) CreatedAt() time.Time { return b.createdAt }
func (b *Benefit) UpdatedAt() time.Time { return b.updatedAt }

func (b *Benefit) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("benefit ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("benefit ID cannot be zero")
	}
	b.id = id
	return nil
}
