package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderRatio renders done/total as a bar like [████░░░░] 4/8.
// Green when everything succeeded, yellow from half up, red below.
func RenderRatio(done, total, width int) string {
	if width < 2 {
		width = 2
	}
	if total <= 0 {
		return fmt.Sprintf("[%s] 0/0", StyleDim.Render(strings.Repeat(emptyBlock, width)))
	}
	done = min(max(done, 0), total)

	filled := done * width / total
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleRed
	switch {
	case done == total:
		style = StyleGreen
	case done*2 >= total:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), done, total)
}
