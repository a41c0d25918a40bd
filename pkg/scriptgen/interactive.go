package scriptgen

import (
	"strconv"
	"strings"
)

// RenderInteractive renders caller supplied interactive elements into
// dialogue lines. Elements render in the exact order supplied, never
// reordered or deduplicated.
func RenderInteractive(elements []InteractiveElement) []string {
	var lines []string

	for _, element := range elements {
		switch element.Type {
		case "menu":
			lines = append(lines,
				"AGENT: "+element.Prompt,
				"SYSTEM: [Wait for keypad input - 3 second timeout]",
				"CUSTOMER: [Presses key - possible responses:]",
				`  - Press 1: "I'm interested"`,
				`  - Press 2: "I'm not interested"`,
				`  - Press 3: "I need more information"`,
			)

		case "input":
			lines = append(lines,
				"AGENT: "+element.Prompt,
				"SYSTEM: [Wait for input - 10 second timeout]",
				"CUSTOMER: [Provides input - possible responses:]",
				`  - "I'll give you my [card number/account info/etc.]"`,
				`  - "I'm not comfortable giving that information"`,
				`  - "Can you explain why you need this?"`,
			)
			if element.Confirmation != "" {
				confirmation := strings.ReplaceAll(element.Confirmation, "{input}", "[CUSTOMER_INPUT]")
				lines = append(lines,
					"AGENT: "+confirmation,
					"SYSTEM: [Wait for confirmation - 3 second timeout]",
					"CUSTOMER: [Presses 1 or 2 - possible responses:]",
					`  - Press 1: "Yes, that's correct"`,
					`  - Press 2: "No, that's not right"`,
				)
			}

		case "confirmation":
			lines = append(lines,
				"AGENT: "+element.Prompt,
				"SYSTEM: [Wait for response - 5 second timeout]",
				"CUSTOMER: [Presses key - possible responses:]",
				`  - Press 1: "Yes, I agree"`,
				`  - Press 2: "No, I don't agree"`,
				`  - Press 0: "I need to speak to someone"`,
			)

		case "pause":
			duration := element.Duration
			if duration <= 0 {
				duration = 2
			}
			lines = append(lines, "SYSTEM: [Pause for "+strconv.Itoa(duration)+" seconds]")
		}
	}

	return lines
}
