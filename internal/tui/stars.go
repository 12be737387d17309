package tui

import "strings"

// RenderStars formats a rating as filled and empty star glyphs, with a
// half mark for .5 ratings. The scale defaults to five stars when max
// is zero or negative.
func RenderStars(rating, max float64) string {
	if max <= 0 {
		max = 5
	}
	total := int(max)
	full := int(rating)
	half := rating-float64(full) >= 0.25 && rating-float64(full) < 0.75
	if rating-float64(full) >= 0.75 {
		full++
	}
	if full > total {
		full = total
	}

	var s strings.Builder
	s.WriteString(strings.Repeat("★", full))
	empty := total - full
	if half {
		s.WriteString("⯨")
		empty--
	}
	if empty > 0 {
		s.WriteString(strings.Repeat("☆", empty))
	}
	return s.String()
}

// RenderSpicy formats a spicy level as flame glyphs out of three.
func RenderSpicy(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 3 {
		level = 3
	}
	return strings.Repeat("🌶", level) + strings.Repeat("·", 3-level)
}
