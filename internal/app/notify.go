package app

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ColorNotifier реализует session.Notifier печатью в терминал.
// Это замена всплывающих уведомлений оригинального интерфейса.
type ColorNotifier struct {
	out io.Writer
}

// NewColorNotifier создаёт нотификатор, пишущий в out.
func NewColorNotifier(out io.Writer) *ColorNotifier {
	return &ColorNotifier{out: out}
}

// Success показывает уведомление об успехе.
func (n *ColorNotifier) Success(title, text string) {
	fmt.Fprintf(n.out, "%s %s\n", color.GreenString(title+":"), text)
}

// Failure показывает уведомление об ошибке.
func (n *ColorNotifier) Failure(title, text string) {
	fmt.Fprintf(n.out, "%s %s\n", color.RedString(title+":"), text)
}
