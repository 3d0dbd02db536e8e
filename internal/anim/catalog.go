package anim

import "sort"

// Timeline names shared between views and the live client.
const (
	LoadingIntro    = "loading-intro"
	HeroEntrance    = "hero-entrance"
	TabEntrance     = "tab-entrance"
	DetailEntrance  = "detail-entrance"
	SectionReveal   = "section-reveal"
	ProductsReveal  = "products-reveal"
	BackgroundOrbs  = "background-orbs"
	TabNavReveal    = "tab-nav-reveal"
	LoadingComplete = "complete"
)

// Catalog is a set of named timelines.
type Catalog struct {
	timelines map[string]Timeline
}

// NewCatalog builds a catalog from the given timelines.
func NewCatalog(ts ...Timeline) *Catalog {
	c := &Catalog{timelines: make(map[string]Timeline, len(ts))}
	for _, t := range ts {
		c.timelines[t.Name] = t
	}
	return c
}

// Get returns the named timeline.
func (c *Catalog) Get(name string) (Timeline, bool) {
	t, ok := c.timelines[name]
	return t, ok
}

// Names lists the catalog in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.timelines))
	for n := range c.timelines {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Validate resolves every timeline and checks scroll start positions.
func (c *Catalog) Validate() error {
	for _, name := range c.Names() {
		t := c.timelines[name]
		if _, err := t.Resolve(); err != nil {
			return err
		}
		if t.Trigger != OnScroll {
			continue
		}
		if _, err := t.Threshold(); err != nil {
			return err
		}
	}
	return nil
}

// Default returns the site's timelines.
func Default() *Catalog {
	return NewCatalog(
		loadingIntro(),
		heroEntrance(),
		tabEntrance(),
		detailEntrance(),
		sectionReveal(),
		productsReveal(),
		backgroundOrbs(),
		tabNavReveal(),
	)
}

func props(kv ...string) map[string]string {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m
}

// loadingIntro is the splash screen. The "complete" marker sits before the
// curtain exit so the hero entrance overlaps the overlay lifting away.
func loadingIntro() Timeline {
	return Timeline{
		Name:    LoadingIntro,
		Trigger: OnMount,
		Scope:   "#loading",
		Steps: []Step{
			{Target: ".loading-image", From: props("scale", "1.2", "filter", "brightness(0.3)"), To: props("scale", "1", "filter", "brightness(1)"), Duration: 2.5, Ease: "power2.out"},
			{Target: ".loading-glow", From: props("opacity", "0", "scale", "0.8"), To: props("opacity", "1", "scale", "1"), Duration: 1, Ease: "power2.out", Position: "-=2"},
			{Target: ".loading-title", From: props("opacity", "0", "y", "40", "scale", "0.95"), To: props("opacity", "1", "y", "0", "scale", "1"), Duration: 0.8, Ease: "back.out(1.2)", Position: "-=1.5"},
			{Target: ".loading-subtitle", From: props("opacity", "0", "y", "30"), To: props("opacity", "1", "y", "0"), Duration: 0.6, Ease: "power2.out", Position: "-=0.4"},
			{Target: ".loading-tagline", From: props("opacity", "0", "y", "20"), To: props("opacity", "1", "y", "0"), Duration: 0.5, Ease: "power2.out", Position: "-=0.3"},
			{Target: ".loading-progress", From: props("scaleX", "0"), To: props("scaleX", "1"), Duration: 1, Ease: "power1.inOut", Position: "-=0.6"},
			{Target: ".loading-glow", To: props("opacity", "0.6", "scale", "1.1"), Duration: 0.4, Ease: "power1.inOut", Repeat: 1, Yoyo: true},
			{Target: "", To: props(), Duration: 0.3},
			{Target: "#loading", To: props("yPercent", "-100"), Duration: 1, Ease: "power3.inOut"},
		},
		Markers: []Marker{{Name: LoadingComplete, Index: 8}},
	}
}

func heroEntrance() Timeline {
	return Timeline{
		Name:    HeroEntrance,
		Trigger: OnEvent,
		Scope:   "#hero",
		Steps: []Step{
			{Target: ".hero-bg", From: props("opacity", "0"), To: props("opacity", "1"), Duration: 0.8, Ease: "power2.out", Delay: 0.3},
			{Target: ".hero-tagline", From: props("opacity", "0", "y", "50"), To: props("opacity", "1", "y", "0"), Duration: 0.8, Ease: "power3.out", Position: "-=0.4"},
			{Target: ".hero-headline-1", From: props("opacity", "0", "y", "50"), To: props("opacity", "1", "y", "0"), Duration: 1, Ease: "back.out(1.2)", Position: "-=0.5"},
			{Target: ".hero-headline-2", From: props("opacity", "0", "y", "50"), To: props("opacity", "1", "y", "0"), Duration: 1, Ease: "back.out(1.2)", Position: "-=0.7"},
			{Target: ".hero-circle", From: props("scale", "0", "opacity", "0"), To: props("scale", "1", "opacity", "1"), Duration: 0.6, Ease: "back.out(2)", Stagger: 0.1, Position: "-=1"},
		},
	}
}

func tabEntrance() Timeline {
	return Timeline{
		Name:    TabEntrance,
		Trigger: OnEvent,
		Scope:   ".active-tab-content",
		Steps: []Step{
			{Target: ".active-tab-content > *", From: props("y", "30", "opacity", "0"), To: props("y", "0", "opacity", "1"), Duration: 0.6, Ease: "power2.out", Stagger: 0.1},
		},
	}
}

func detailEntrance() Timeline {
	return Timeline{
		Name:    DetailEntrance,
		Trigger: OnMount,
		Steps: []Step{
			{Target: ".hero-badge", From: props("y", "20", "opacity", "0"), To: props("y", "0", "opacity", "1"), Duration: 0.8, Ease: "power3.out", Delay: 0.5},
			{Target: ".hero-title", From: props("y", "40", "opacity", "0"), To: props("y", "0", "opacity", "1"), Duration: 1, Ease: "power3.out", Position: "-=0.6"},
			{Target: ".hero-description", From: props("y", "20", "opacity", "0"), To: props("y", "0", "opacity", "1"), Duration: 0.8, Ease: "power3.out", Position: "-=0.8"},
		},
	}
}

func sectionReveal() Timeline {
	return Timeline{
		Name:    SectionReveal,
		Trigger: OnScroll,
		Start:   "top 85%",
		Steps: []Step{
			{Target: ".reveal", From: props("opacity", "0", "y", "30"), To: props("opacity", "1", "y", "0"), Duration: 0.8, Ease: "power2.out"},
		},
	}
}

func productsReveal() Timeline {
	return Timeline{
		Name:    ProductsReveal,
		Trigger: OnScroll,
		Start:   "top 80%",
		Scope:   "#products",
		Steps: []Step{
			{Target: ".eco-header", From: props("opacity", "0", "y", "30"), To: props("opacity", "1", "y", "0"), Duration: 0.8, Ease: "power2.out"},
			{Target: ".eco-block-1 .eco-content", From: props("opacity", "0", "x", "-60"), To: props("opacity", "1", "x", "0"), Duration: 1, Ease: "power2.out"},
			{Target: ".eco-block-1 .eco-visual", From: props("opacity", "0", "x", "60"), To: props("opacity", "1", "x", "0"), Duration: 1, Ease: "power2.out", Position: "<"},
		},
	}
}

func backgroundOrbs() Timeline {
	return Timeline{
		Name:    BackgroundOrbs,
		Trigger: OnMount,
		Steps: []Step{
			{Target: ".bg-orb", To: props("x", "random(-40, 40)", "y", "random(-40, 40)"), Duration: 15, Ease: "sine.inOut", Repeat: -1, Yoyo: true},
		},
	}
}

func tabNavReveal() Timeline {
	return Timeline{
		Name:    TabNavReveal,
		Trigger: OnScroll,
		Start:   "top 90%",
		Steps: []Step{
			{Target: ".tab-nav-sticky", From: props("opacity", "0"), To: props("opacity", "1"), Duration: 1},
		},
	}
}
