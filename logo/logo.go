package logo

import (
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Render renders the application logo shown in the help description.
func Render() string {
	s, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgCyan.ToStyle()),
		putils.LettersFromStringWithStyle("ase58", pterm.FgLightMagenta.ToStyle())).Srender()
	if err != nil {
		return "Base58"
	}
	return s
}
