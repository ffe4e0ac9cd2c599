package rawsite

import (
	"fmt"
	"log/slog"
	"strings"
)

// The dynamic header reserves six named comment markers for page-specific
// controls. Slot one is implicitly the permanent buttons, which the composer
// emits itself; the assembler resolves the rest per page kind.
const (
	SlotSecondButton  = "SecondButton"
	SlotThirdButton   = "ThirdButton"
	SlotFourthButton  = "FourthButton"
	SlotFifthButton   = "FifthButton"
	SlotSixthButton   = "SixthButton"
	SlotSeventhButton = "SeventhButton"
)

// slotNames in document order. Resolution walks this list exactly once, so a
// leftover marker after assembly is impossible.
var slotNames = []string{
	SlotSecondButton,
	SlotThirdButton,
	SlotFourthButton,
	SlotFifthButton,
	SlotSixthButton,
	SlotSeventhButton,
}

func slotMarker(name string) string { return "<!--" + name + "-->" }

// maxPermanentButtons caps the buttons emitted ahead of the slots.
const maxPermanentButtons = 3

// ComposeDynamicHeader builds the navigation/banner block shared by all
// pages: optional banner, site title and subtitle, the permanent buttons, and
// the six unresolved placeholder slots.
func ComposeDynamicHeader(conf *SiteConfig) string {
	var b strings.Builder

	b.WriteString("<div id=\"dynamicheader\">\n")

	if banner := strings.TrimSpace(conf.BannerImage); banner != "" {
		fmt.Fprintf(&b, "<div class=\"banner\"><img src=%q alt=\"%s\"></div>\n", banner, conf.Title)
	}

	fmt.Fprintf(&b, "<div class=\"sitetitle\"><h1>%s</h1>", conf.Title)
	if conf.Subtitle != "" {
		fmt.Fprintf(&b, "<p class=\"subtitle\">%s</p>", conf.Subtitle)
	}
	b.WriteString("</div>\n")

	b.WriteString("<div class=\"navbuttons\">\n")
	ids := conf.PermanentButtons
	if len(ids) > maxPermanentButtons {
		ids = ids[:maxPermanentButtons]
	}
	for _, id := range ids {
		btn, ok := conf.Buttons[id]
		if !ok || btn.Text == "" || btn.URL == "" || btn.Icon == "" {
			slog.Warn("skipping incomplete permanent button", "id", id)
			continue
		}
		b.WriteString(renderButton(btn))
		b.WriteString("\n")
	}
	for _, name := range slotNames {
		b.WriteString(slotMarker(name))
		b.WriteString("\n")
	}
	b.WriteString("</div>\n</div>\n")

	return b.String()
}

func renderButton(btn Button) string {
	return fmt.Sprintf("<a class=\"navbutton\" href=%q title=%q><img src=%q alt=%q>%s</a>",
		btn.URL, btn.Tooltip, btn.Icon, btn.Text, btn.Text)
}

// resolveSlots substitutes every slot marker exactly once. Slots without an
// entry in fills become the empty string.
func resolveSlots(html string, fills map[string]string) string {
	for _, name := range slotNames {
		html = strings.Replace(html, slotMarker(name), fills[name], 1)
	}
	return html
}
