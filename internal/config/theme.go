package config

import (
	"github.com/alexisbeaulieu97/consolekit/pkg/border"
	"github.com/alexisbeaulieu97/consolekit/pkg/color"
	"github.com/alexisbeaulieu97/consolekit/pkg/table"
	"github.com/alexisbeaulieu97/consolekit/pkg/wrap"
)

// Pair resolves the named colors.
func (p ColorPair) Pair() (color.Pair, error) {
	fg, err := color.Parse(p.Foreground)
	if err != nil {
		return color.Pair{}, err
	}
	bg, err := color.Parse(p.Background)
	if err != nil {
		return color.Pair{}, err
	}
	return color.New(fg, bg), nil
}

// BorderStyle resolves the configured border.
func (c *Config) BorderStyle() (border.Style, error) {
	return border.ByName(c.Border)
}

// TableStyle builds the table style described by the theme.
func (c *Config) TableStyle() (table.Style, error) {
	bs, err := c.BorderStyle()
	if err != nil {
		return table.Style{}, err
	}
	borderColor, err := c.BorderColor.Pair()
	if err != nil {
		return table.Style{}, err
	}
	valueColor, err := c.ValueColor.Pair()
	if err != nil {
		return table.Style{}, err
	}
	return table.Style{
		Padding:     table.Padding{Left: c.Padding.Left, Right: c.Padding.Right},
		Border:      bs,
		BorderColor: borderColor,
		ValueColor:  valueColor,
	}, nil
}

// WrapOptions builds wrapping options colored with the text color.
func (c *Config) WrapOptions() (wrap.Options, error) {
	textColor, err := c.TextColor.Pair()
	if err != nil {
		return wrap.Options{}, err
	}
	return wrap.Options{
		LineLength: c.Wrap.LineLength,
		PadEnds:    c.Wrap.PadEnds,
		Color:      textColor,
	}, nil
}
