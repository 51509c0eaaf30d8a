package web

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/samber/lo"

	"github.com/petal-labs/visionary/core"
)

//go:embed assets/index.html
var indexTmpl string

// InitialPrompt prefills the prompt box.
const InitialPrompt = "A cinematic shot of a small independent cafe at midnight on December 31st. A 'Final Sale' sign hangs in the frost-covered window. The street lights reflect in puddles of melted snow. Moody, emotional, professional photography style."

var artistNotes = []string{
	`"Struggling business" can be depicted through closed shops, empty tables, or weary owners.`,
	`"Year ending" imagery often uses snow, fireworks (contrast), or midnight clocks.`,
	`Use the 'Enhance' tool for cinematic lighting and emotional depth.`,
}

var pageTemplate = template.Must(template.New("index").Parse(indexTmpl))

type aspectOption struct {
	Value   string
	Label   string
	Default bool
}

type pageParams struct {
	InitialPrompt string
	AspectRatios  []aspectOption
	Notes         []string
}

func renderPage() ([]byte, error) {
	params := pageParams{
		InitialPrompt: InitialPrompt,
		AspectRatios: lo.Map(core.AspectRatios(), func(a core.AspectRatio, _ int) aspectOption {
			return aspectOption{Value: string(a), Label: a.Label(), Default: a == core.AspectRatioSquare}
		}),
		Notes: artistNotes,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, params); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
