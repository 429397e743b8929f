package sprite

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/disintegration/imaging"
	"github.com/muesli/termenv"

	"github.com/five82/weatherpane/internal/icons"
)

// Protocol selects how icons are drawn in the terminal.
type Protocol string

const (
	ProtocolHalfblocks Protocol = "halfblocks"
	ProtocolKitty      Protocol = "kitty"
	ProtocolITerm2     Protocol = "iterm2"
	ProtocolSixel      Protocol = "sixel"
)

// ParseProtocol maps a config value to a Protocol. Empty and "auto" select
// halfblocks, which works in any true-colour terminal.
func ParseProtocol(name string) (Protocol, error) {
	switch p := Protocol(strings.ToLower(strings.TrimSpace(name))); p {
	case "", "auto":
		return ProtocolHalfblocks, nil
	case ProtocolHalfblocks, ProtocolKitty, ProtocolITerm2, ProtocolSixel:
		return p, nil
	default:
		return "", fmt.Errorf("unknown image protocol %q", name)
	}
}

// alphaThreshold is the alpha below which a pixel counts as transparent.
const alphaThreshold = 128

// Renderer turns catalog entries into fixed-size terminal blocks. An entry
// that is not Opaque renders as blank cells of the same size, so the
// layout never moves when the visible icon changes. Renderer caches output
// per icon id and is not safe for concurrent use.
type Renderer struct {
	protocol Protocol
	width    int
	height   int
	profile  termenv.Profile
	cache    map[string]string
	blank    string
}

// NewRenderer creates a renderer drawing icons into width x height cells.
// profile controls colour downsampling for halfblocks.
func NewRenderer(protocol Protocol, width, height int, profile termenv.Profile) *Renderer {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	if protocol == "" {
		protocol = ProtocolHalfblocks
	}
	return &Renderer{
		protocol: protocol,
		width:    width,
		height:   height,
		profile:  profile,
		cache:    make(map[string]string),
		blank:    blankBlock(width, height),
	}
}

// Size returns the block size in cells.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Blank returns the empty block drawn for transparent icons.
func (r *Renderer) Blank() string {
	return r.blank
}

// Render draws e if it is Opaque and blank cells otherwise. Images that fail
// to render also come out blank; the error is returned for logging.
func (r *Renderer) Render(e icons.Entry) (string, error) {
	if e.Opacity != icons.Opaque || e.Image == nil {
		return r.blank, nil
	}
	if cached, ok := r.cache[e.ID]; ok {
		return cached, nil
	}

	var (
		out string
		err error
	)
	switch r.protocol {
	case ProtocolKitty:
		out, err = r.renderTermimg(e.Image, termimg.Kitty)
	case ProtocolITerm2:
		out, err = r.renderTermimg(e.Image, termimg.ITerm2)
	case ProtocolSixel:
		out, err = r.renderTermimg(e.Image, termimg.Sixel)
	default:
		out = r.renderHalfblocks(e.Image)
	}
	if err != nil {
		return r.blank, fmt.Errorf("render icon %s: %w", e.ID, err)
	}
	r.cache[e.ID] = out
	return out, nil
}

// renderTermimg delegates to go-termimg. The escape sequence is followed by
// enough newlines to reserve the block's rows.
func (r *Renderer) renderTermimg(img image.Image, proto termimg.Protocol) (string, error) {
	ti := termimg.New(img)
	if ti == nil {
		return "", fmt.Errorf("go-termimg: failed to create image wrapper")
	}
	ti.Protocol(proto).Size(r.width, r.height).Scale(termimg.ScaleFit)
	rendered, err := ti.Render()
	if err != nil {
		return "", err
	}
	return rendered + strings.Repeat("\n", r.height-1), nil
}

// renderHalfblocks draws two pixel rows per cell with the upper half block:
// the top pixel is the foreground, the bottom pixel the background.
func (r *Renderer) renderHalfblocks(img image.Image) string {
	fitted := imaging.Fit(img, r.width, r.height*2, imaging.Lanczos)
	bounds := fitted.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	padLeft := (r.width - w) / 2
	padTop := (r.height - (h+1)/2) / 2

	lines := make([]string, 0, r.height)
	for i := 0; i < padTop; i++ {
		lines = append(lines, strings.Repeat(" ", r.width))
	}

	for y := 0; y < h; y += 2 {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", padLeft))
		for x := 0; x < w; x++ {
			top := fitted.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			var bottom color.NRGBA
			if y+1 < h {
				bottom = fitted.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y+1)
			}
			b.WriteString(r.cell(top, bottom))
		}
		b.WriteString(strings.Repeat(" ", r.width-w-padLeft))
		lines = append(lines, b.String())
	}

	for len(lines) < r.height {
		lines = append(lines, strings.Repeat(" ", r.width))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) cell(top, bottom color.NRGBA) string {
	topOn := top.A >= alphaThreshold
	bottomOn := bottom.A >= alphaThreshold
	switch {
	case !topOn && !bottomOn:
		return " "
	case !topOn:
		return r.profile.String("▄").Foreground(r.profile.Color(hex(bottom))).String()
	case !bottomOn:
		return r.profile.String("▀").Foreground(r.profile.Color(hex(top))).String()
	default:
		return r.profile.String("▀").
			Foreground(r.profile.Color(hex(top))).
			Background(r.profile.Color(hex(bottom))).
			String()
	}
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func blankBlock(width, height int) string {
	row := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = row
	}
	return strings.Join(lines, "\n")
}
