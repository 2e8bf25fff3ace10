package information

import "context"

// BenefitRepository reads and seeds benefit content.
type BenefitRepository interface {
	Save(ctx context.Context, benefit *Benefit) error
	// ListByLanguage returns active benefits ordered by title.
	ListByLanguage(ctx context.Context, language Language) ([]*Benefit, error)
	Count(ctx context.Context) (int64, error)
}

// FAQRepository reads and seeds FAQ content.
type FAQRepository interface {
	Save(ctx context.Context, faq *FAQ) error
	// ListByLanguage returns active FAQs ordered by sortOrder, then
	// question.
	ListByLanguage(ctx context.Context, language Language) ([]*FAQ, error)
	Count(ctx context.Context) (int64, error)
}
