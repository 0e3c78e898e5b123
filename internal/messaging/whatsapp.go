package messaging

import (
	"errors"
	"net/url"
	"strings"
)

var ErrNoDestination = errors.New("messaging destination is not configured")

const waBaseURL = "https://wa.me/"

// Sender turns a composed order message into a link that opens a pre-filled
// conversation with the shop. Delivery itself happens outside the app.
type Sender interface {
	Link(message string) (string, error)
}

// WhatsApp builds wa.me click-to-chat links for a fixed phone number
type WhatsApp struct {
	number string
}

// NewWhatsApp creates a sender for the given phone number. Formatting
// characters such as "+", spaces and dashes are dropped.
func NewWhatsApp(number string) *WhatsApp {
	return &WhatsApp{number: digitsOnly(number)}
}

// Number returns the normalized destination
func (w *WhatsApp) Number() string {
	return w.number
}

// Link returns https://wa.me/<number>?text=<message>
func (w *WhatsApp) Link(message string) (string, error) {
	if w.number == "" {
		return "", ErrNoDestination
	}
	return waBaseURL + w.number + "?text=" + encodeComponent(message), nil
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// keeps the characters encodeURIComponent leaves literal
var unreserved = strings.NewReplacer("%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")

// encodeComponent escapes like JavaScript's encodeURIComponent
func encodeComponent(s string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	return unreserved.Replace(escaped)
}
