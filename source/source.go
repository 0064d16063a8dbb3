// Package source supplies the text of the first generation.
package source

// Source provides raw generation text in the format model.ParseGrid reads
type Source interface {
	Input() (string, error)
}

// Text is a Source backed by a fixed string
type Text string

// Input returns the text unchanged
func (t Text) Input() (string, error) {
	return string(t), nil
}
