package terminal

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Printer prints conversion results and failures to the terminal.
type Printer struct {
	success *pterm.PrefixPrinter
	info    *pterm.PrefixPrinter
	failure *pterm.PrefixPrinter
	out     io.Writer
}

// New creates new Printer writing results to out and failures to errOut.
func New(out, errOut io.Writer) Printer {
	return Printer{
		success: pterm.Success.WithWriter(out),
		info:    pterm.Info.WithWriter(out),
		failure: pterm.Error.WithWriter(errOut),
		out:     out,
	}
}

// Success prints the formatted successful result.
func (p Printer) Success(format string, a ...any) {
	p.success.Printfln(format, a...)
}

// Info prints the formatted supplementary information.
func (p Printer) Info(format string, a ...any) {
	p.info.Printfln(format, a...)
}

// Value prints the success label followed by the value written verbatim, so multi-line values are not indented.
func (p Printer) Value(label, value string) {
	p.success.Print(label + " ")
	fmt.Fprintln(p.out, value)
}

// Failure prints the error.
func (p Printer) Failure(err error) {
	p.failure.Println(err.Error())
}

// Block prints multi-line text verbatim.
func (p Printer) Block(text string) {
	fmt.Fprintln(p.out, text)
}
