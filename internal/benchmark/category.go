package benchmark

import (
	"fmt"
	"strings"
)

type Category string

const (
	Credit Category = "credit"
	Debit  Category = "debit"
	QR     Category = "qr"
)

// Categories lists categories in drawing order, bottom to top inside a group.
var Categories = []Category{Credit, Debit, QR}

// Title is the name shown in labels and data tables.
func (c Category) Title() string {
	switch c {
	case Credit:
		return "Crédito"
	case Debit:
		return "Débito"
	case QR:
		return "QR interoperable"
	}
	return string(c)
}

// Short is the name used in legend entries.
func (c Category) Short() string {
	if c == QR {
		return "QR"
	}
	return c.Title()
}

// Offset is the vertical offset of the category bar from the actor's row.
func (c Category) Offset(barWidth float64) float64 {
	switch c {
	case Credit:
		return -barWidth
	case QR:
		return barWidth
	}
	return 0
}

// ParseCategory accepts either the key or the display title.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) || s == c.Title() || s == c.Short() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
