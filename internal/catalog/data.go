// internal/catalog/data.go
package catalog

import "github.com/rasmstore/backend/internal/models"

// The fixed category set, in display order.
const (
	CategoryDisplayTablets = "display-tablets"
	CategoryPenTablets     = "pen-tablets"
	CategoryCalculators    = "calculators"
)

// Categories returns the category ids in storefront display order.
func Categories() []string {
	return []string{CategoryDisplayTablets, CategoryPenTablets, CategoryCalculators}
}

func intp(i int) *int { return &i }

func floatp(f float64) *float64 { return &f }

// Seed returns the literal product catalog shown in the store. Text is
// Arabic-first; ids double as URL segments on the product detail pages.
func Seed() []models.Product {
	return []models.Product{
		{
			ID:       "huion-1060p",
			Name:     "Huion 1060P - جهاز الرسم التعليمي",
			Brand:    "Huion",
			Category: CategoryDisplayTablets,
			Price:    3650,
			Description: "جهاز رسم تفاعلي متقدم مع شاشة عرض ملونة واضحة، مثالي للطلاب والمحترفين. " +
				"يدعم 8192 مستوى ضغط للرسم الدقيق والسلس.",
			ShortDescription: "جهاز رسم تعليمي احترافي بشاشة عرض",
			Images: []models.ProductImage{
				{URL: "/huion1060p/first.jpg", Alt: "Huion 1060P - جهاز الرسم الرئيسي", Order: intp(1)},
				{URL: "/huion1060p/second.png", Alt: "Huion 1060P - منظور جانبي", Order: intp(2)},
				{URL: "/huion1060p/third.jpeg", Alt: "Huion 1060P - تفاصيل الجهاز", Order: intp(3)},
			},
			Specifications: []models.ProductSpec{
				{Label: "حجم الشاشة", Value: "10.6 بوصة"},
				{Label: "دقة الشاشة", Value: "1920 × 1200 بكسل"},
				{Label: "مستويات الضغط", Value: "8192 مستوى"},
				{Label: "معدل الاستجابة", Value: "5.08 مللي ثانية"},
				{Label: "الاتصال", Value: "USB-C / HDMI"},
				{Label: "الوزن", Value: "1.2 كجم"},
				{Label: "البطارية", Value: "لا تحتاج - متصلة بالتيار"},
			},
			KeyFeatures: []string{
				"شاشة عرض ملونة IPS بزوايا عرض واسعة",
				"دعم نظامي Windows و macOS والأجهزة اللوحية",
				"قلم ضغط متقدم مع 8192 مستوى حساسية",
				"مثالي للرسم الرقمي والتصميم والتعليم",
			},
			FreeDelivery: true,
			DeviceCompatibility: &models.DeviceCompatibility{
				Computers: &models.ComputerSupport{
					Windows: "Windows 7 أو أحدث",
					Mac:     "macOS 10.12 أو أحدث",
				},
			},
			TeacherFriendly: true,
			InStock:         true,
		},
		{
			ID:       "huion-hs611",
			Name:     "Huion HS611 - جهاز الرسم المحمول",
			Brand:    "Huion",
			Category: CategoryPenTablets,
			Price:    4250,
			Description: "جهاز رسم محمول خفيف الوزن مثالي للطلاب والفنانين المحترفين. " +
				"يتميز بحساسية عالية وتوافق كامل مع جميع برامج الرسم الاحترافية.",
			ShortDescription: "جهاز رسم محمول بحساسية عالية",
			Images: []models.ProductImage{
				{URL: "/hs611/first.jpg", Alt: "Huion HS611 - جهاز الرسم الرئيسي", Order: intp(1)},
				{URL: "/hs611/second.jpeg", Alt: "Huion HS611 - منظور جانبي", Order: intp(2)},
				{URL: "/hs611/third.jpeg", Alt: "Huion HS611 - الاستخدام الفعلي", Order: intp(3)},
			},
			Specifications: []models.ProductSpec{
				{Label: "حجم سطح الرسم", Value: "6.3 × 3.9 بوصة"},
				{Label: "دقة الضغط", Value: "4096 مستوى"},
				{Label: "معدل الاستجابة", Value: "3 مللي ثانية"},
				{Label: "معدل التقرير", Value: "200 تقرير في الثانية"},
				{Label: "الاتصال", Value: "USB 2.0"},
				{Label: "الوزن", Value: "400 جرام فقط"},
				{Label: "التوافقية", Value: "Windows و macOS و Linux"},
			},
			KeyFeatures: []string{
				"خفيف الوزن وسهل الحمل في الحقيبة",
				"سطح رسم مريح مع تصميم حديث",
				"توافق كامل مع برامج Adobe و Clip Studio",
				"مثالي للمبتدئين والمحترفين",
			},
			DeviceCompatibility: &models.DeviceCompatibility{
				Computers: &models.ComputerSupport{
					Windows: "Windows 7 أو أحدث",
					Mac:     "macOS 10.12 أو أحدث",
					Linux:   "توزيعات Linux الشائعة",
				},
				Tablets: &models.MobileSupport{
					Android: "Android 6.0 أو أحدث عبر USB OTG",
					IOS:     "غير مدعوم",
				},
			},
			UsageScenarios: []string{
				"الرسم الرقمي والتلوين",
				"تصحيح الواجبات وشرح الدروس عن بعد",
				"التوقيع الإلكتروني على المستندات",
			},
			InStock: true,
		},
		{
			ID:            "casio-fx991es-plus",
			Name:          "Casio FX-991ES Plus - الآلة الحاسبة العلمية",
			Brand:         "Casio",
			Category:      CategoryCalculators,
			Price:         500,
			OriginalPrice: floatp(600),
			Description: "آلة حاسبة علمية متقدمة مع 417 دالة رياضية، مثالية لطلاب الهندسة والعلوم. " +
				"تدعم العمليات الحسابية المعقدة والمصفوفات والإحصاء.",
			ShortDescription: "آلة حاسبة علمية متقدمة للطلاب",
			Images: []models.ProductImage{
				{URL: "/991es/first.jpg", Alt: "Casio FX-991ES Plus - الآلة الحاسبة الرئيسية", Order: intp(1)},
				{URL: "/991es/second.jpg", Alt: "Casio FX-991ES Plus - شاشة العرض", Order: intp(2)},
				{URL: "/991es/third.jpg", Alt: "Casio FX-991ES Plus - لوحة المفاتيح", Order: intp(3)},
			},
			Specifications: []models.ProductSpec{
				{Label: "عدد الدوال", Value: "417 دالة رياضية"},
				{Label: "نوع الشاشة", Value: "LCD بسطرين"},
				{Label: "نطاق الحساب", Value: "±99 إلى ±10^±99"},
				{Label: "الذاكرة", Value: "متغيرات متعددة للتخزين"},
				{Label: "البطاريات", Value: "AAA × 2 أو بطارية شمسية"},
				{Label: "الأبعاد", Value: "77 × 161 × 11 ملم"},
				{Label: "الوزن", Value: "91 جرام"},
			},
			KeyFeatures: []string{
				"417 دالة علمية مدمجة",
				"حسابات المصفوفات والإحصاء المتقدمة",
				"جداول البيانات والحسابات الجدولية",
				"موثوقة ومستخدمة في المدارس والجامعات",
			},
			TeacherFriendly: true,
			InStock:         true,
		},
	}
}
