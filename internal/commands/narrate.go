package commands

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
)

func narrationFuncs() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["itemList"] = itemList
	return funcs
}

var lookTmpl = template.Must(template.New("look").Funcs(narrationFuncs()).Parse(
	`{{ .Location.Name }}

{{ .Location.Description }}{{ if .Items }}

You see {{ itemList .Items }} here.{{ end }}{{ if .Exits }}

Exits: {{ join ", " .Exits }}.{{ end }}`))

var useTmpl = template.Must(template.New("use").Funcs(narrationFuncs()).Parse(
	`{{ .Narration }}{{ if .Yield }} You now have the {{ .Yield.Name }}.{{ end }}`))

// itemList joins item names into prose: "a, b and c".
func itemList(items []game.ItemSummary) string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	if len(names) <= 1 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

func narrateLook(view *game.LookView) string {
	return render(lookTmpl, view, view.Location.Description)
}

func narrateUse(outcome *game.UseOutcome) string {
	return render(useTmpl, outcome, outcome.Narration)
}

// render executes a narration template, falling back to plain text if
// execution fails. Narration is flavor; it must never fail a command.
func render(tmpl *template.Template, data any, fallback string) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return display.Wrap(fallback)
	}
	return display.Wrap(buf.String())
}
