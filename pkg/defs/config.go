package defs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-scope/scopeui/pkg/graphics"
	"github.com/go-scope/scopeui/pkg/render"
	"github.com/go-scope/scopeui/pkg/widget"
)

// ConfigName is the optional widget overlay file looked up by LoadOptional.
const ConfigName = "scope.yaml"

// Config represents the optional scope.yaml widget overlay. A widget entry
// fully defines its type: it replaces the built-in record of the same type
// rather than merging with it. Built-in types not listed stay untouched.
type Config struct {
	Widgets []WidgetConfig `yaml:"widgets"`
}

// WidgetConfig is one widget definition in scope.yaml.
type WidgetConfig struct {
	Type   string `yaml:"type"`
	Name   string `yaml:"name,omitempty"`
	Role   string `yaml:"role,omitempty"`
	Custom bool   `yaml:"custom,omitempty"`

	Sizing     SizingConfig      `yaml:"sizing"`
	Position   PositionConfig    `yaml:"position"`
	Background *BackgroundConfig `yaml:"background,omitempty"`
	Border     *BorderConfig     `yaml:"border,omitempty"`
	Text       *TextConfig       `yaml:"text,omitempty"`
	Label      string            `yaml:"label,omitempty"`
	Graph      *GraphConfig      `yaml:"graph,omitempty"`
}

// SizingConfig selects the sizing policy.
type SizingConfig struct {
	Mode    string `yaml:"mode,omitempty"`
	Width   int    `yaml:"width,omitempty"`
	Height  int    `yaml:"height,omitempty"`
	Percent int    `yaml:"percent,omitempty"`
}

// PositionConfig anchors the widget.
type PositionConfig struct {
	Align   string `yaml:"align,omitempty"`
	OffsetX int    `yaml:"offset-x,omitempty"`
	OffsetY int    `yaml:"offset-y,omitempty"`
}

// BackgroundConfig styles the widget fill.
type BackgroundConfig struct {
	Color   string `yaml:"color,omitempty"`
	Opacity uint8  `yaml:"opacity,omitempty"`
}

// BorderConfig styles the widget edges.
type BorderConfig struct {
	Width   int    `yaml:"width,omitempty"`
	Color   string `yaml:"color,omitempty"`
	Opacity uint8  `yaml:"opacity,omitempty"`
}

// TextConfig styles label typography.
type TextConfig struct {
	Font          string `yaml:"font,omitempty"`
	Color         string `yaml:"color,omitempty"`
	Align         string `yaml:"align,omitempty"`
	LetterSpacing int    `yaml:"letter-spacing,omitempty"`
	LineSpacing   int    `yaml:"line-spacing,omitempty"`
}

// GraphConfig carries the graph widget payload.
type GraphConfig struct {
	OriginColor       string `yaml:"origin-color,omitempty"`
	OriginThickness   int    `yaml:"origin-thickness,omitempty"`
	GridlineColor     string `yaml:"gridline-color,omitempty"`
	GridlineThickness int    `yaml:"gridline-thickness,omitempty"`
	TimeDivisions     int    `yaml:"time-divisions"`
	VoltageDivisions  int    `yaml:"voltage-divisions"`
	XOriginIndex      int    `yaml:"x-origin-index,omitempty"`
	YOriginIndex      int    `yaml:"y-origin-index,omitempty"`
}

// LoadOptional reads scope.yaml from dir if present. A missing file is not
// an error; the built-in defaults then apply unchanged.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ConfigName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigName, err)
	}

	return &cfg, nil
}

// Resolve overlays cfg onto the built-in defaults and returns the final
// widget set. Overlay entries replace the default record of the same type;
// entries for types without a default are appended.
func Resolve(cfg *Config) ([]*widget.Attributes, error) {
	records := Defaults()
	if cfg == nil {
		return records, nil
	}

	for i := range cfg.Widgets {
		rec, err := cfg.Widgets[i].record()
		if err != nil {
			return nil, fmt.Errorf("widget %d: %w", i, err)
		}

		replaced := false
		for j, existing := range records {
			if existing.Type == rec.Type {
				records[j] = rec
				replaced = true
				break
			}
		}
		if !replaced {
			records = append(records, rec)
		}
	}

	return records, nil
}

func (w *WidgetConfig) record() (*widget.Attributes, error) {
	ty, err := parseType(w.Type)
	if err != nil {
		return nil, err
	}
	role, err := parseRole(w.Role)
	if err != nil {
		return nil, err
	}
	mode, err := parseSizingMode(w.Sizing.Mode)
	if err != nil {
		return nil, err
	}
	align, err := parseAlign(w.Position.Align)
	if err != nil {
		return nil, err
	}

	rec := &widget.Attributes{
		Custom: w.Custom,
		Type:   ty,
		Role:   role,
		Name:   w.Name,
		Geometry: widget.Geometry{
			Mode:    mode,
			Width:   w.Sizing.Width,
			Height:  w.Sizing.Height,
			Percent: w.Sizing.Percent,
		},
		Position: widget.Position{
			Alignment: align,
			OffsetX:   w.Position.OffsetX,
			OffsetY:   w.Position.OffsetY,
		},
		Label: widget.Label{Text: w.Label},
	}

	if w.Background != nil {
		color, err := ParseColor(w.Background.Color)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		rec.Background = widget.Background{Color: color, Opacity: w.Background.Opacity}
	}

	if w.Border != nil {
		color, err := ParseColor(w.Border.Color)
		if err != nil {
			return nil, fmt.Errorf("border: %w", err)
		}
		rec.Border = widget.Border{
			Width:   w.Border.Width,
			Color:   color,
			Opacity: w.Border.Opacity,
			Side:    render.BorderSideFull,
		}
	}

	if w.Text != nil {
		color, err := ParseColor(w.Text.Color)
		if err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		textAlign, err := parseTextAlign(w.Text.Align)
		if err != nil {
			return nil, err
		}
		rec.Text = widget.Text{
			Font:          w.Text.Font,
			Color:         color,
			Align:         textAlign,
			LetterSpacing: w.Text.LetterSpacing,
			LineSpacing:   w.Text.LineSpacing,
		}
	}

	if w.Graph != nil {
		originColor, err := ParseColor(w.Graph.OriginColor)
		if err != nil {
			return nil, fmt.Errorf("graph origin: %w", err)
		}
		gridlineColor, err := ParseColor(w.Graph.GridlineColor)
		if err != nil {
			return nil, fmt.Errorf("graph gridline: %w", err)
		}
		rec.Payload = widget.GraphPayload{
			OriginColor:       originColor,
			OriginThickness:   w.Graph.OriginThickness,
			GridlineColor:     gridlineColor,
			GridlineThickness: w.Graph.GridlineThickness,
			TimeDivisions:     w.Graph.TimeDivisions,
			VoltageDivisions:  w.Graph.VoltageDivisions,
			XOriginIndex:      w.Graph.XOriginIndex,
			YOriginIndex:      w.Graph.YOriginIndex,
		}
	}

	return rec, nil
}

func parseType(s string) (widget.Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return widget.TypeDefault, nil
	case "label":
		return widget.TypeLabel, nil
	case "graph":
		return widget.TypeGraph, nil
	}
	return 0, fmt.Errorf("unknown widget type %q", s)
}

func parseRole(s string) (widget.Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return widget.RoleDefault, nil
	case "decorative":
		return widget.RoleDecorative, nil
	case "informative":
		return widget.RoleInformative, nil
	case "functional":
		return widget.RoleFunctional, nil
	case "feedback":
		return widget.RoleFeedback, nil
	case "branding":
		return widget.RoleBranding, nil
	case "background":
		return widget.RoleBackground, nil
	case "preview":
		return widget.RolePreview, nil
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

func parseSizingMode(s string) (widget.SizingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "absolute":
		return widget.SizingAbsolute, nil
	case "area-percent":
		return widget.SizingAreaPercent, nil
	case "dimension-percent":
		return widget.SizingDimensionPercent, nil
	}
	return 0, fmt.Errorf("unknown sizing mode %q", s)
}

func parseAlign(s string) (render.Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return render.AlignDefault, nil
	case "top-left":
		return render.AlignTopLeft, nil
	case "top-mid":
		return render.AlignTopMid, nil
	case "top-right":
		return render.AlignTopRight, nil
	case "left-mid":
		return render.AlignLeftMid, nil
	case "center":
		return render.AlignCenter, nil
	case "right-mid":
		return render.AlignRightMid, nil
	case "bottom-left":
		return render.AlignBottomLeft, nil
	case "bottom-mid":
		return render.AlignBottomMid, nil
	case "bottom-right":
		return render.AlignBottomRight, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

func parseTextAlign(s string) (render.TextAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return render.TextAlignAuto, nil
	case "left":
		return render.TextAlignLeft, nil
	case "center":
		return render.TextAlignCenter, nil
	case "right":
		return render.TextAlignRight, nil
	}
	return 0, fmt.Errorf("unknown text alignment %q", s)
}

// ParseColor resolves a named color or a "#rrggbb" hex triplet. Hex colors
// are reduced to the display's 16-bit depth.
func ParseColor(s string) (graphics.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "", "default", "black":
		return graphics.ColorBlack, nil
	case "white":
		return graphics.ColorWhite, nil
	case "red":
		return graphics.ColorRed, nil
	case "green":
		return graphics.ColorGreen, nil
	case "blue":
		return graphics.ColorBlue, nil
	case "light-grey", "light-gray":
		return graphics.ColorLightGrey, nil
	}

	if strings.HasPrefix(name, "#") && len(name) == 7 {
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q", s)
		}
		return graphics.FromRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}

	return 0, fmt.Errorf("unknown color %q", s)
}
