// Package list formats bulleted and numbered lists for console output.
package list

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/consolekit/pkg/color"
	apperrors "github.com/alexisbeaulieu97/consolekit/pkg/errors"
)

// Formatter is a list that can be written line by line.
type Formatter interface {
	Lines() []string
	ItemColor() color.Pair
}

type base struct {
	items     []string
	itemColor color.Pair
}

func newBase(items []string) (base, error) {
	if items == nil {
		return base{}, apperrors.NewMissingArgumentError("items", "")
	}
	copied := make([]string, len(items))
	copy(copied, items)
	return base{items: copied}, nil
}

// Items returns a copy of the list items.
func (b *base) Items() []string {
	items := make([]string, len(b.items))
	copy(items, b.items)
	return items
}

// ItemColor returns the color used for every item.
func (b *base) ItemColor() color.Pair {
	return b.itemColor
}

// Unordered prefixes every item with the same marker.
type Unordered struct {
	base
	prefix string
}

// NewUnordered creates a list using the "- " prefix.
func NewUnordered(items []string) (*Unordered, error) {
	b, err := newBase(items)
	if err != nil {
		return nil, err
	}
	return &Unordered{base: b, prefix: "- "}, nil
}

// WithPrefix replaces the item marker.
func (l *Unordered) WithPrefix(prefix string) *Unordered {
	l.prefix = prefix
	return l
}

// WithItemColor sets the item color.
func (l *Unordered) WithItemColor(p color.Pair) *Unordered {
	l.itemColor = p
	return l
}

func (l *Unordered) Prefix() string { return l.prefix }

func (l *Unordered) Lines() []string {
	lines := make([]string, len(l.items))
	for i, item := range l.items {
		lines[i] = l.prefix + item
	}
	return lines
}

// Ordered numbers its items, counting up from a start number.
type Ordered struct {
	base
	start     int
	delimiter string
	padNumber bool
}

// NewOrdered creates a list numbered from 1 with ". " after each number.
func NewOrdered(items []string) (*Ordered, error) {
	b, err := newBase(items)
	if err != nil {
		return nil, err
	}
	return &Ordered{base: b, start: 1, delimiter: ". "}, nil
}

// WithStart sets the number of the first item.
func (l *Ordered) WithStart(n int) *Ordered {
	l.start = n
	return l
}

// WithDelimiter sets the text between the number and the item.
func (l *Ordered) WithDelimiter(delimiter string) *Ordered {
	l.delimiter = delimiter
	return l
}

// WithNumberPadding zero-pads item numbers to the width of the last number.
// Padding is never applied when the list starts below zero.
func (l *Ordered) WithNumberPadding(enabled bool) *Ordered {
	l.padNumber = enabled
	return l
}

// WithItemColor sets the item color.
func (l *Ordered) WithItemColor(p color.Pair) *Ordered {
	l.itemColor = p
	return l
}

func (l *Ordered) Start() int        { return l.start }
func (l *Ordered) Delimiter() string { return l.delimiter }

func (l *Ordered) Lines() []string {
	lines := make([]string, len(l.items))
	for i, item := range l.items {
		lines[i] = l.number(l.start+i) + l.delimiter + item
	}
	return lines
}

func (l *Ordered) number(n int) string {
	s := strconv.Itoa(n)
	if !l.padNumber || l.start < 0 {
		return s
	}
	digits := len(strconv.Itoa(len(l.items) + l.start - 1))
	if len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	}
	return s
}
