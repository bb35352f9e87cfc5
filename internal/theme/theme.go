package theme

// Color is a normalized RGB triple.
type Color [3]float64

// Theme is one discrete visual preset: scene fog and card base color.
type Theme struct {
	Name          string
	Fog           Color
	CardColor     Color
	ParticleColor Color
}

// presets is the fixed theme table. Themes are cycled by the host page, so
// lookups stay O(1) and misses are silent.
var presets = map[string]Theme{
	"midnight": {
		Name:          "midnight",
		Fog:           Color{0.04, 0.05, 0.10},
		CardColor:     Color{0.12, 0.16, 0.32},
		ParticleColor: Color{0.55, 0.65, 1.00},
	},
	"ocean": {
		Name:          "ocean",
		Fog:           Color{0.02, 0.09, 0.12},
		CardColor:     Color{0.05, 0.35, 0.42},
		ParticleColor: Color{0.40, 0.95, 0.90},
	},
	"sunset": {
		Name:          "sunset",
		Fog:           Color{0.12, 0.05, 0.08},
		CardColor:     Color{0.55, 0.20, 0.25},
		ParticleColor: Color{1.00, 0.75, 0.45},
	},
}

// DefaultTheme is applied when nothing else is configured.
const DefaultTheme = "midnight"

// Names returns the known preset names.
func Names() []string {
	return []string{"midnight", "ocean", "sunset"}
}

// Lookup returns the preset for name, ok=false for unknown names.
func Lookup(name string) (Theme, bool) {
	t, ok := presets[name]
	return t, ok
}
