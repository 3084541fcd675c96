package control

// Panel is an ordered set of sliders with one focused at a time.
type Panel struct {
	sliders []*Slider
	focus   int
}

func NewPanel(sliders ...*Slider) *Panel {
	return &Panel{sliders: sliders}
}

func (p *Panel) Sliders() []*Slider { return p.sliders }
func (p *Panel) Focus() int         { return p.focus }

// Focused returns the focused slider, or nil for an empty panel.
func (p *Panel) Focused() *Slider {
	if len(p.sliders) == 0 {
		return nil
	}
	return p.sliders[p.focus]
}

func (p *Panel) Next() {
	if len(p.sliders) > 0 {
		p.focus = (p.focus + 1) % len(p.sliders)
	}
}

func (p *Panel) Prev() {
	if len(p.sliders) > 0 {
		p.focus = (p.focus - 1 + len(p.sliders)) % len(p.sliders)
	}
}
