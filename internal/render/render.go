// Package render turns resolved doc tree nodes into markdown pages and HTML.
// It is the only consumer of segmented docstrings: text segments become prose
// paragraphs, code segments become fenced blocks, and nothing re-parses
// segment content afterwards.
package render

import (
	"fmt"
	"strings"

	gm "github.com/gomarkdown/markdown"
	gmhtml "github.com/gomarkdown/markdown/html"
	gmparser "github.com/gomarkdown/markdown/parser"

	"github.com/griffedoc/griffedoc/internal/docs"
	"github.com/griffedoc/griffedoc/internal/docstring"
)

// Title returns the dotted display name of a module page.
func Title(pkg string, path []string) string {
	return strings.Join(append([]string{pkg}, path...), ".")
}

// ModulePage builds the full markdown document for one module page.
func ModulePage(pkg string, path []string, m *docs.Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", Title(pkg, path))
	writeDocstring(&b, m.Docstring)

	if m.Modules.Len() > 0 {
		b.WriteString("## Modules\n\n")
		for p := m.Modules.Oldest(); p != nil; p = p.Next() {
			fmt.Fprintf(&b, "- **%s** — %s\n", p.Key, p.Value.Docstring.Summary)
		}
		b.WriteString("\n")
	}

	if m.Aliases.Len() > 0 {
		b.WriteString("## Aliases\n\n")
		for p := m.Aliases.Oldest(); p != nil; p = p.Next() {
			fmt.Fprintf(&b, "- `%s` → `%s`\n", p.Key, p.Value.Target)
		}
		b.WriteString("\n")
	}

	for p := m.Classes.Oldest(); p != nil; p = p.Next() {
		writeClass(&b, p.Value)
	}

	for p := m.Functions.Oldest(); p != nil; p = p.Next() {
		if docs.IsPrivate(p.Key) {
			continue
		}
		writeFunction(&b, "## ", p.Value)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Docstring renders a docstring to markdown: the summary line, then the
// normalized description split into prose and fenced code segments.
func Docstring(ds docs.Docstring) string {
	var b strings.Builder
	writeDocstring(&b, ds)
	return b.String()
}

// HTML converts rendered markdown to HTML for the page-serving layer.
func HTML(markdown string) []byte {
	p := gmparser.NewWithExtensions(gmparser.CommonExtensions | gmparser.Autolink)
	renderer := gmhtml.NewRenderer(gmhtml.RendererOptions{Flags: gmhtml.CommonFlags})
	return gm.ToHTML([]byte(markdown), p, renderer)
}

func writeDocstring(b *strings.Builder, ds docs.Docstring) {
	if ds.Summary != "" {
		b.WriteString(ds.Summary + "\n\n")
	}
	desc := docstring.Normalize(ds.Summary, ds.Description)
	for _, seg := range docstring.Split(desc) {
		switch seg.Kind {
		case docstring.KindCode:
			b.WriteString("```\n" + seg.Content + "\n```\n\n")
		default:
			b.WriteString(seg.Content + "\n\n")
		}
	}
}

func writeClass(b *strings.Builder, c *docs.Class) {
	fmt.Fprintf(b, "## class %s\n\n", c.Name)
	if len(c.Bases) > 0 {
		fmt.Fprintf(b, "Bases: `%s`\n\n", strings.Join(c.Bases, "`, `"))
	}
	writeDocstring(b, c.Docstring)

	if c.Attributes.Len() > 0 {
		b.WriteString("### Attributes\n\n")
		for p := c.Attributes.Oldest(); p != nil; p = p.Next() {
			if docs.IsPrivate(p.Key) {
				continue
			}
			attr := p.Value
			if attr.Type != "" {
				fmt.Fprintf(b, "- **%s** (`%s`) — %s\n", p.Key, attr.Type, attr.Docstring.Summary)
			} else {
				fmt.Fprintf(b, "- **%s** — %s\n", p.Key, attr.Docstring.Summary)
			}
		}
		b.WriteString("\n")
	}

	for p := c.Methods.Oldest(); p != nil; p = p.Next() {
		if docs.IsPrivate(p.Key) {
			continue
		}
		writeMethod(b, c.Name, p.Value)
	}
}

func writeMethod(b *strings.Builder, className string, f *docs.Function) {
	fmt.Fprintf(b, "### %s.%s\n\n", className, f.Name)
	writeFunctionBody(b, f)
}

func writeFunction(b *strings.Builder, heading string, f *docs.Function) {
	fmt.Fprintf(b, "%s%s\n\n", heading, f.Name)
	writeFunctionBody(b, f)
}

func writeFunctionBody(b *strings.Builder, f *docs.Function) {
	if f.Signature != "" {
		fmt.Fprintf(b, "```\n%s%s\n```\n\n", f.Name, f.Signature)
	}
	writeDocstring(b, f.Docstring)

	if len(f.Parameters) > 0 {
		b.WriteString("**Parameters**\n\n")
		for _, p := range f.Parameters {
			line := "- `" + p.Name + "`"
			if p.Type != "" {
				line += " (`" + p.Type + "`)"
			}
			if p.Default != "" {
				line += " — default `" + p.Default + "`"
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}
	if f.Returns.Type != "" {
		fmt.Fprintf(b, "**Returns** `%s`\n\n", f.Returns.Type)
	}
}
