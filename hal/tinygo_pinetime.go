//go:build tinygo && baremetal && pinetime

package hal

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/st7789"
)

const (
	panelSize = 240
	// The face renders at half resolution and is doubled on the way to the
	// panel; a full 240x240 RGB565 buffer does not fit next to the heap.
	panelScale = 2
	fbSize     = panelSize / panelScale

	batteryEmptyMV = 3500
	batteryFullMV  = 4200
)

type pineTimeHAL struct {
	fb    Framebuffer
	t     *tinyGoTime
	power *pineTimePower
}

// New returns the PineTime HAL: ST7789 panel on SPI0, battery ADC and charge pin.
func New() HAL {
	h := &pineTimeHAL{
		t:     newTinyGoTime(),
		power: newPineTimePower(),
	}
	fb, err := newPanelFramebuffer()
	if err != nil {
		printLogger{}.WriteLineString("display: " + err.Error())
		h.fb = headlessPanel{w: fbSize, h: fbSize}
	} else {
		h.fb = fb
	}
	return h
}

func (h *pineTimeHAL) Logger() Logger   { return printLogger{} }
func (h *pineTimeHAL) Display() Display { return tinyGoDisplay{fb: h.fb, color: true} }
func (h *pineTimeHAL) Input() Input     { return tinyGoInput{kbd: noKeys{}} }
func (h *pineTimeHAL) Time() Time       { return h.t }
func (h *pineTimeHAL) Power() Power     { return h.power }

// No pedometer driver or BLE stack yet.
func (h *pineTimeHAL) Health() Health { return nil }
func (h *pineTimeHAL) Link() Link     { return nil }

type panelFramebuffer struct {
	lcd    st7789.Device
	w      int
	h      int
	stride int
	buf    []byte
	line   []byte
}

func newPanelFramebuffer() (*panelFramebuffer, error) {
	if err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8_000_000,
		SCK:       machine.SPI0_SCK_PIN,
		SDO:       machine.SPI0_SDO_PIN,
		Mode:      3,
	}); err != nil {
		return nil, err
	}

	lcd := st7789.New(machine.SPI0,
		machine.LCD_RESET,
		machine.LCD_RS,
		machine.LCD_CS,
		machine.LCD_BACKLIGHT_HIGH)
	lcd.Configure(st7789.Config{
		Width:    panelSize,
		Height:   panelSize,
		Rotation: st7789.NO_ROTATION,
	})

	stride := fbSize * 2
	return &panelFramebuffer{
		lcd:    lcd,
		w:      fbSize,
		h:      fbSize,
		stride: stride,
		buf:    make([]byte, stride*fbSize),
		line:   make([]byte, panelSize*2*panelScale),
	}, nil
}

func (f *panelFramebuffer) Width() int          { return f.w }
func (f *panelFramebuffer) Height() int         { return f.h }
func (f *panelFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *panelFramebuffer) StrideBytes() int    { return f.stride }
func (f *panelFramebuffer) Buffer() []byte      { return f.buf }

func (f *panelFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Present doubles every pixel and streams the rows to the panel.
func (f *panelFramebuffer) Present() error {
	if len(f.buf) < f.stride*f.h {
		return errors.New("invalid framebuffer")
	}
	rowBytes := panelSize * 2
	for y := 0; y < f.h; y++ {
		src := f.buf[y*f.stride : y*f.stride+f.w*2]
		for x := 0; x < f.w; x++ {
			// The face stores RGB565 in little-endian. The LCD expects big-endian.
			hi, lo := src[x*2+1], src[x*2]
			for s := 0; s < panelScale; s++ {
				o := (x*panelScale + s) * 2
				f.line[o] = hi
				f.line[o+1] = lo
			}
		}
		for s := 1; s < panelScale; s++ {
			copy(f.line[s*rowBytes:(s+1)*rowBytes], f.line[:rowBytes])
		}
		if err := f.lcd.DrawRGBBitmap8(0, int16(y*panelScale), f.line, panelSize, panelScale); err != nil {
			return err
		}
	}
	return nil
}

type pineTimePower struct {
	adc    machine.ADC
	charge machine.Pin
}

func newPineTimePower() *pineTimePower {
	machine.InitADC()
	adc := machine.ADC{Pin: machine.BATTERY_VOLTAGE}
	adc.Configure(machine.ADCConfig{})
	machine.CHARGE_INDICATION.Configure(machine.PinConfig{Mode: machine.PinInput})
	return &pineTimePower{adc: adc, charge: machine.CHARGE_INDICATION}
}

// Battery maps the divided cell voltage linearly between empty and full.
func (p *pineTimePower) Battery() (int, bool) {
	mv := int(p.adc.Get()) * 6600 / 65535
	percent := (mv - batteryEmptyMV) * 100 / (batteryFullMV - batteryEmptyMV)
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return percent, !p.charge.Get()
}
