// internal/storefront/links_test.go
package storefront

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumberUsesArabicDigits(t *testing.T) {
	got := FormatNumber(3650)

	assert.Equal(t, "٣٬٦٥٠", got)
	assert.NotContains(t, got, "3")
}

func TestFormatPrice(t *testing.T) {
	got := FormatPrice(500)

	assert.True(t, strings.HasSuffix(got, " جنيه"), "got %q", got)
	assert.Contains(t, got, "٥")
}

func TestInquiryMessage(t *testing.T) {
	msg := InquiryMessage("Huion HS611", 4250)

	assert.Contains(t, msg, "Huion HS611")
	assert.Contains(t, msg, "السلام عليكم")
	assert.Contains(t, msg, "هل متوفر حالياً؟")
	assert.NotContains(t, msg, "4250")
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("201227278084", "Huion HS611", 4250)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/201227278084?text="), "got %q", link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)

	// The pre-filled message survives the round trip intact.
	text := parsed.Query().Get("text")
	assert.Equal(t, InquiryMessage("Huion HS611", 4250), text)
}
