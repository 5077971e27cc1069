package main

import "github.com/charmbracelet/glamour"

const rulesMarkdown = `# Ten-pin scoring

A game has **ten frames**. Enter the number of pins knocked down by each
throw, one throw per line.

| Mark | Meaning |
|------|---------|
| ` + "`X`" + ` | Strike: all ten pins on the first throw of a frame |
| ` + "`/`" + ` | Spare: the rest of the pins on the second throw |
| ` + "`-`" + ` | Miss |

## Frames 1-9

- A strike ends the frame and scores 10 plus the next **two** throws.
- A spare scores 10 plus the next **one** throw.
- An open frame scores the pins knocked down. Two throws in one frame can
  never add up to more than 10.

## Frame 10

- A strike on the first throw earns two more throws, three in total.
- Otherwise the frame ends after two throws, spare or not.
- The tenth frame scores exactly the pins knocked down in it.

A perfect game is twelve strikes in a row for **300**.
`

// renderRules renders the scoring rules for a terminal of the given width.
func renderRules(width int) (string, error) {
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	return r.Render(rulesMarkdown)
}
