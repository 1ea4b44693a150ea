package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagflow/pkg/measure"
	"github.com/matzehuels/tagflow/pkg/pipeline"
)

// layoutFlags holds the packing and measurement flags shared by layout,
// render and preview. Values only reach the pipeline when the flag was set
// on the command line, so tag document settings are not overridden by flag
// defaults.
type layoutFlags struct {
	width    float64
	align    string
	hspacing float64
	vspacing float64
	unit     string
	fontSize float64
	paddingX float64
	paddingY float64
	border   bool
	noCache  bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64Var(&f.width, "width", pipeline.DefaultWidth, "container width (px, or cells with --unit cell)")
	fs.StringVar(&f.align, "align", "", "row alignment: leading, center (default), trailing")
	fs.Float64Var(&f.hspacing, "hspacing", 10, "horizontal gap between chips")
	fs.Float64Var(&f.vspacing, "vspacing", 10, "vertical gap between rows")
	fs.StringVar(&f.unit, "unit", measure.UnitPixel, "measurement unit: px, cell")
	fs.Float64Var(&f.fontSize, "font-size", pipeline.DefaultFontSize, "label font size in px")
	fs.Float64Var(&f.paddingX, "padding-x", pipeline.DefaultPaddingX, "horizontal chip padding")
	fs.Float64Var(&f.paddingY, "padding-y", pipeline.DefaultPaddingY, "vertical chip padding (px only)")
	fs.BoolVar(&f.border, "border", false, "draw chip borders in terminal text")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable caching")
	registerLayoutCompletions(cmd)
}

// apply copies the explicitly set flags into opts.
func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	fs := cmd.Flags()
	if fs.Changed("width") {
		opts.Width = pipeline.Float(f.width)
	}
	if fs.Changed("hspacing") {
		opts.HorizontalSpacing = pipeline.Float(f.hspacing)
	}
	if fs.Changed("vspacing") {
		opts.VerticalSpacing = pipeline.Float(f.vspacing)
	}
	if fs.Changed("padding-x") {
		opts.PaddingX = pipeline.Float(f.paddingX)
	}
	if fs.Changed("padding-y") {
		opts.PaddingY = pipeline.Float(f.paddingY)
	}
	if fs.Changed("font-size") {
		opts.FontSize = f.fontSize
	}
	opts.Alignment = f.align
	opts.Unit = f.unit
	opts.Border = f.border
}

// renderFlags holds the output flags of the render command.
type renderFlags struct {
	output  string
	formats string
	style   string
	margin  float64
	color   bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	fs.StringVarP(&f.formats, "format", "f", pipeline.FormatSVG, "output format(s): svg, json, txt (comma-separated)")
	fs.StringVar(&f.style, "style", pipeline.DefaultStyle, "visual style: pill, simple")
	fs.Float64Var(&f.margin, "margin", 0, "SVG margin around the layout")
	fs.BoolVar(&f.color, "color", false, "colorize terminal text output")
	registerRenderCompletions(cmd)
}

func (f *renderFlags) apply(opts *pipeline.Options) {
	opts.Formats = pipeline.ParseFormats(f.formats)
	opts.Style = f.style
	opts.Margin = f.margin
	opts.Color = f.color
}
