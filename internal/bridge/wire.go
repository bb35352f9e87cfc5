package bridge

import "checkout3d/internal/overlay"

// clientEvent is the inbound JSON shape from the hosted-fields page. Only
// event metadata crosses the wire; field values stay in the opaque iframe.
type clientEvent struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`

	IsValid            bool `json:"isValid,omitempty"`
	IsPotentiallyValid bool `json:"isPotentiallyValid,omitempty"`

	Width            float64 `json:"width,omitempty"`
	Height           float64 `json:"height,omitempty"`
	DevicePixelRatio float64 `json:"dpr,omitempty"`

	Theme string `json:"theme,omitempty"`
}

// rectJSON is pixel geometry in CSS units, named for direct assignment to
// style.left/top/width/height on the page.
type rectJSON struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type regionJSON struct {
	rectJSON
	Opacity       float64 `json:"opacity"`
	PointerEvents bool    `json:"pointerEvents"`
}

// serverMessage is the outbound JSON shape: either a per-frame layout or a
// payment result.
type serverMessage struct {
	Type string `json:"type"`

	Container *rectJSON             `json:"container,omitempty"`
	Flipped   bool                  `json:"flipped,omitempty"`
	Regions   map[string]regionJSON `json:"regions,omitempty"`

	OK      bool   `json:"ok,omitempty"`
	TxID    string `json:"txId,omitempty"`
	Message string `json:"message,omitempty"`
}

func layoutFrame(l overlay.Layout) serverMessage {
	regions := make(map[string]regionJSON, len(l.Regions))
	for name, r := range l.Regions {
		regions[name] = regionJSON{
			rectJSON: rectJSON{
				Left:   r.X,
				Top:    r.Y,
				Width:  r.Width,
				Height: r.Height,
			},
			Opacity:       r.Opacity,
			PointerEvents: r.PointerEvents,
		}
	}
	return serverMessage{
		Type: "layout",
		Container: &rectJSON{
			Left:   l.Container.X,
			Top:    l.Container.Y,
			Width:  l.Container.Width,
			Height: l.Container.Height,
		},
		Flipped: l.Flipped,
		Regions: regions,
	}
}
