package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var esMX = message.NewPrinter(language.MustParse("es-MX"))

// FormatPrice renders a whole-peso amount the way the storefront shows it:
// "$1,499", no decimals.
func FormatPrice(price int) string {
	return esMX.Sprintf("$%d", price)
}
