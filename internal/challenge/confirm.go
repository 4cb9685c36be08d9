package challenge

// Confirmer decides whether a destructive horizon change may proceed.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Always answers every prompt with the same decision.
func Always(yes bool) Confirmer {
	return ConfirmFunc(func(string) bool { return yes })
}
