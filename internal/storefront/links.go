// internal/storefront/links.go
package storefront

import (
	"fmt"
	"net/url"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Purchase intent never goes through a checkout flow. The storefront
// opens WhatsApp with a pre-filled Arabic inquiry naming the product
// and its price, and the rest of the conversation happens there.
const inquiryTemplate = "السلام عليكم ورحمة الله وبركاته\n\nأود الاستفسار عن: %s\nالسعر: %s جنيه\n\nهل متوفر حالياً؟"

// The nu-arab extension pins Arabic-Indic digits; a bare "ar-EG" tag
// resolves to Latin digits in x/text.
var egyptianArabic = language.MustParse("ar-EG-u-nu-arab")

// FormatNumber renders a price amount with Egyptian Arabic digits and
// grouping, without a currency suffix.
func FormatNumber(v float64) string {
	p := message.NewPrinter(egyptianArabic)
	return p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// FormatPrice renders a display price, e.g. "٣٬٦٥٠ جنيه".
func FormatPrice(v float64) string {
	return FormatNumber(v) + " جنيه"
}

// InquiryMessage builds the pre-filled WhatsApp message for a product.
func InquiryMessage(productName string, price float64) string {
	return fmt.Sprintf(inquiryTemplate, productName, FormatNumber(price))
}

// WhatsAppLink builds the wa.me deep link carrying the inquiry message.
// The phone number is international format without the leading plus.
func WhatsAppLink(phone, productName string, price float64) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(InquiryMessage(productName, price)))
}
