package outwriter

import (
	"os"

	"github.com/huangsam/rolodex/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for contact names in table output
// based on terminal width.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	termWidth := cfg.Width

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for pipes and CI
			termWidth = contract.DefaultTermWidth
		} else {
			termWidth = detectedWidth
		}
	}

	// Phones, Birthday, Days and Next columns plus borders and padding
	available := termWidth - contract.TableReservedWidth
	if available < contract.MinTableNameWidth {
		return contract.MinTableNameWidth
	}
	if available > contract.MaxTableNameWidth {
		return contract.MaxTableNameWidth
	}
	return available
}
