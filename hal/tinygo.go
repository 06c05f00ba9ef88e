//go:build tinygo && baremetal && !pinetime

package hal

// New returns a HAL for boards without a supported panel. The watch runs and
// logs through println but has nothing to draw on.
func New() HAL {
	return &bareHAL{
		panel: headlessPanel{w: 144, h: 168},
		t:     newTinyGoTime(),
	}
}

type bareHAL struct {
	panel headlessPanel
	t     *tinyGoTime
}

func (h *bareHAL) Logger() Logger   { return printLogger{} }
func (h *bareHAL) Display() Display { return tinyGoDisplay{fb: h.panel, color: false} }
func (h *bareHAL) Input() Input     { return tinyGoInput{kbd: noKeys{}} }
func (h *bareHAL) Time() Time       { return h.t }
func (h *bareHAL) Power() Power     { return nil }
func (h *bareHAL) Health() Health   { return nil }
func (h *bareHAL) Link() Link       { return nil }
