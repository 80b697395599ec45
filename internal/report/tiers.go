package report

import "fmt"

// Tier is one interpretation band. UpTo is the inclusive upper bound on the
// total score; the last tier in a table is the catch-all for everything
// above the previous bound.
type Tier struct {
	UpTo  int
	Label string
	Text  string
}

// DefaultTiers is the interpretation table for the 30-question, 4-point
// deployment (total scores 30-120). Deployments on another scale supply
// their own table.
func DefaultTiers() []Tier {
	return []Tier{
		{
			UpTo:  29,
			Label: "Emerging ally",
			Text: "Your responses suggest you are at the beginning of your allyship journey. " +
				"Start small: invest time in learning about people whose experiences differ from " +
				"your own, and notice the moments where you could listen rather than speak. " +
				"Every section of this assessment points to a concrete behaviour you can practise this week.",
		},
		{
			UpTo:  90,
			Label: "Developing ally",
			Text: "You have built a foundation of awareness and are acting on it some of the time. " +
				"Look at the sections where you scored lowest and pick one behaviour to practise " +
				"deliberately. Consistency matters more than intensity; allyship grows through " +
				"small actions repeated until they become habits.",
		},
		{
			UpTo:  110,
			Label: "Strong ally",
			Text: "You act on equity and inclusion regularly and others likely see you as someone " +
				"who speaks up. Your growth edge is moving from individual action to structural " +
				"influence: amplify voices in decisions you own, and hold your team accountable " +
				"for the environment you create together.",
		},
		{
			Label: "Leading ally",
			Text: "Your responses reflect sustained, structural allyship. Keep challenging yourself: " +
				"mentor others on these behaviours, measure the outcomes of your decisions across " +
				"different populations, and make equity a standing priority in your strategic work. " +
				"Leadership here means building systems that outlast your personal involvement.",
		},
	}
}

// SelectTier returns the first tier whose bound covers score, scanning from
// the lowest band up. The last tier always matches.
func SelectTier(tiers []Tier, score int) Tier {
	for i, t := range tiers {
		if i == len(tiers)-1 {
			break
		}
		if score <= t.UpTo {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// ValidateTiers checks an interpretation table at startup: at least one
// tier, strictly ascending bounds, no empty text.
func ValidateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("interpretation table is empty")
	}
	prev := 0
	for i, t := range tiers {
		if t.Text == "" {
			return fmt.Errorf("tier %d has no text", i)
		}
		if i == len(tiers)-1 {
			continue // catch-all, bound unused
		}
		if i > 0 && t.UpTo <= prev {
			return fmt.Errorf("tier bounds must ascend: %d after %d", t.UpTo, prev)
		}
		prev = t.UpTo
	}
	return nil
}
