// Package seed loads the initial information portal content in English
// and Arabic. Seeding is idempotent: rows are only inserted into empty
// tables.
package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sanad/internal/domain/information"
	"sanad/internal/infrastructure/repository"
	"sanad/internal/shared/logger"
)

type benefitSeed struct {
	slug        string
	title       string
	description string
	category    string
	language    information.Language
}

type faqSeed struct {
	question  string
	answer    string
	language  information.Language
	sortOrder int
}

var benefitSeeds = []benefitSeed{
	{
		slug:        "financial-assistance",
		title:       "Financial Assistance",
		description: "Details about financial aid programs, including emergency funds and stipends. Eligibility criteria include demonstrated financial need and specific circumstances related to family status. Complete the online Financial Aid Application form available in your dashboard.",
		category:    "Financial",
		language:    information.LanguageEnglish,
	},
	{
		slug:        "medical-support",
		title:       "Medical Support",
		description: "Coverage for medical treatment, medication costs, and rehabilitation programs for wounded beneficiaries and their families. Submit a medical assistance application with supporting documentation from your treating physician.",
		category:    "Medical",
		language:    information.LanguageEnglish,
	},
	{
		slug:        "educational-support",
		title:       "Educational Support",
		description: "Tuition assistance, school supplies, and scholarship programs for children of beneficiary families. Applications are reviewed before each academic term.",
		category:    "Educational",
		language:    information.LanguageEnglish,
	},
	{
		slug:        "vocational-training",
		title:       "Vocational Training",
		description: "Programs designed to provide job skills, training opportunities, and assistance with job placement. Express interest through your case worker or check the portal for current training opportunities.",
		category:    "Vocational",
		language:    information.LanguageEnglish,
	},
	{
		slug:        "financial-assistance",
		title:       "مساعدة مالية",
		description: "تفاصيل حول برامج المساعدات المالية بما في ذلك صناديق الطوارئ والرواتب. تشمل معايير الأهلية الحاجة المالية المثبتة والظروف الخاصة بوضع الأسرة. أكمل نموذج طلب المساعدة المالية المتاح في لوحة التحكم الخاصة بك.",
		category:    "Financial",
		language:    information.LanguageArabic,
	},
	{
		slug:        "medical-support",
		title:       "دعم طبي",
		description: "تغطية تكاليف العلاج الطبي والأدوية وبرامج إعادة التأهيل للجرحى وأسرهم. قدم طلب مساعدة طبية مع المستندات الداعمة من طبيبك المعالج.",
		category:    "Medical",
		language:    information.LanguageArabic,
	},
	{
		slug:        "educational-support",
		title:       "دعم تعليمي",
		description: "مساعدات الرسوم الدراسية واللوازم المدرسية وبرامج المنح لأبناء الأسر المستفيدة. تتم مراجعة الطلبات قبل كل فصل دراسي.",
		category:    "Educational",
		language:    information.LanguageArabic,
	},
	{
		slug:        "vocational-training",
		title:       "تدريب مهني",
		description: "المساعدة في التدريب الوظيفي والتوظيف. عبر عن اهتمامك من خلال الأخصائي الاجتماعي الخاص بك أو تحقق من البوابة لمعرفة فرص التدريب الحالية.",
		category:    "Vocational",
		language:    information.LanguageArabic,
	},
}

var faqSeeds = []faqSeed{
	{
		question:  "How often is information updated?",
		answer:    "Information on benefits and programs is reviewed and updated quarterly, or sooner if significant program changes occur. Check the portal regularly for the latest details.",
		language:  information.LanguageEnglish,
		sortOrder: 10,
	},
	{
		question:  "How do I contact my case worker?",
		answer:    "Use the Messages section of the portal to reach your assigned case worker directly. Messages are typically answered within two business days.",
		language:  information.LanguageEnglish,
		sortOrder: 20,
	},
	{
		question:  "How long does an application take to process?",
		answer:    "Processing time is typically 2-4 weeks depending on the type of assistance requested and the completeness of the submitted documentation.",
		language:  information.LanguageEnglish,
		sortOrder: 30,
	},
	{
		question:  "Is my personal information kept confidential?",
		answer:    "Yes, we adhere to strict data privacy and security policies. Your personal information is kept confidential and used solely for the purpose of providing support.",
		language:  information.LanguageEnglish,
		sortOrder: 40,
	},
	{
		question:  "كم مرة يتم تحديث المعلومات؟",
		answer:    "تتم مراجعة المعلومات وتحديثها فصليًا أو في وقت أقرب إذا حدثت تغييرات كبيرة في البرامج. تحقق من البوابة بانتظام للحصول على أحدث التفاصيل.",
		language:  information.LanguageArabic,
		sortOrder: 10,
	},
	{
		question:  "كيف أتواصل مع الأخصائي الاجتماعي الخاص بي؟",
		answer:    "استخدم قسم الرسائل في البوابة للتواصل مباشرة مع الأخصائي المعين لك. يتم الرد على الرسائل عادة خلال يومي عمل.",
		language:  information.LanguageArabic,
		sortOrder: 20,
	},
	{
		question:  "كم يستغرق معالجة الطلب؟",
		answer:    "تستغرق المعالجة عادة من أسبوعين إلى أربعة أسابيع حسب نوع المساعدة المطلوبة واكتمال المستندات المقدمة.",
		language:  information.LanguageArabic,
		sortOrder: 30,
	},
	{
		question:  "هل يتم الحفاظ على سرية معلوماتي الشخصية؟",
		answer:    "نعم، نحن نلتزم بسياسات خصوصية وأمن صارمة. يتم الحفاظ على سرية معلوماتك الشخصية وتستخدم فقط لغرض تقديم الدعم.",
		language:  information.LanguageArabic,
		sortOrder: 40,
	},
}

// Information inserts the initial benefits and FAQs when both tables are
// empty.
func Information(ctx context.Context, gormDB *gorm.DB, log logger.Interface) error {
	benefitRepo := repository.NewBenefitRepository(gormDB)
	faqRepo := repository.NewFAQRepository(gormDB)

	benefitCount, err := benefitRepo.Count(ctx)
	if err != nil {
		return err
	}
	if benefitCount == 0 {
		for _, s := range benefitSeeds {
			b, err := information.NewBenefit(s.slug, s.title, s.description, s.category, s.language)
			if err != nil {
				return fmt.Errorf("invalid benefit seed %q: %w", s.title, err)
			}
			if err := benefitRepo.Save(ctx, b); err != nil {
				return err
			}
		}
		log.Infow("benefits seeded", "count", len(benefitSeeds))
	}

	faqCount, err := faqRepo.Count(ctx)
	if err != nil {
		return err
	}
	if faqCount == 0 {
		for _, s := range faqSeeds {
			f, err := information.NewFAQ(s.question, s.answer, s.language, s.sortOrder)
			if err != nil {
				return fmt.Errorf("invalid faq seed %q: %w", s.question, err)
			}
			if err := faqRepo.Save(ctx, f); err != nil {
				return err
			}
		}
		log.Infow("faqs seeded", "count", len(faqSeeds))
	}

	return nil
}
