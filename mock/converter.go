package mock

import "github.com/mjarosz/newsprobe"

var _ newsprobe.Converter = (*Converter)(nil)

// Converter is a mock implementation of newsprobe.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
