package card

// Normalization fills defaults once at the decode boundary so downstream
// stages operate on fully-populated values: amounts default to 1, nil
// slices become empty, and targets default to self-player. The layout
// pipeline relies on this and never re-checks field presence.

// Normalize returns a copy of the behavior with defaults applied.
func (b Behavior) Normalize() Behavior {
	out := Behavior{
		Triggers:    make([]Trigger, len(b.Triggers)),
		Inputs:      normalizeAmounts(b.Inputs),
		Outputs:     normalizeAmounts(b.Outputs),
		Choices:     make([]Choice, len(b.Choices)),
		Per:         normalizePer(b.Per),
		Description: b.Description,
	}
	copy(out.Triggers, b.Triggers)
	for i, c := range b.Choices {
		out.Choices[i] = Choice{
			Inputs:  normalizeAmounts(c.Inputs),
			Outputs: normalizeAmounts(c.Outputs),
		}
	}
	return out
}

// NormalizeBehaviors normalizes a whole behavior list, always returning a
// non-nil slice.
func NormalizeBehaviors(behaviors []Behavior) []Behavior {
	out := make([]Behavior, len(behaviors))
	for i, b := range behaviors {
		out[i] = b.Normalize()
	}
	return out
}

func normalizeAmounts(in []ResourceAmount) []ResourceAmount {
	out := make([]ResourceAmount, len(in))
	for i, r := range in {
		if r.Amount == 0 {
			r.Amount = 1
		}
		if r.Target == "" {
			r.Target = TargetSelfPlayer
		}
		out[i] = r
	}
	return out
}

func normalizePer(p *Per) *Per {
	if p == nil {
		return nil
	}
	cp := *p
	if cp.Amount == 0 {
		cp.Amount = 1
	}
	return &cp
}

// Normalize applies behavior normalization across the card.
func (c Card) Normalize() Card {
	c.Behaviors = NormalizeBehaviors(c.Behaviors)
	if c.Tags == nil {
		c.Tags = []Tag{}
	}
	return c
}
