/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"portfolioshowcase/internal/domain"
	"portfolioshowcase/internal/view"
)

const pageCSS = `
body{font-family:system-ui,sans-serif;margin:0;background:#FCFCF9;color:#13343B}
header,nav,main{max-width:1100px;margin:0 auto;padding:16px 24px}
h1{color:#21808D;margin:0}
.filters{display:flex;flex-wrap:wrap;gap:8px}
.filter-btn{padding:6px 14px;border-radius:999px;border:1px solid #D1D5DB}
.filter-btn.active{background:#21808D;color:#fff;border-color:#21808D}
.portfolio__grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(300px,1fr));gap:24px}
.project-card{background:#fff;border:1px solid #D1D5DB;border-radius:12px;padding:16px}
.project-card__colors,.modal__colors{display:flex;gap:6px}
.color-swatch{display:inline-block;width:24px;height:24px;border-radius:6px;border:1px solid #0002}
.project-card__category,.modal__category{color:#21808D}
.modal__content{border-top:1px solid #D1D5DB;padding:24px 0}
.modal__image{background:#E6F2F3;padding:48px;text-align:center;font-style:italic}
.modal__details{display:grid;grid-template-columns:repeat(auto-fill,minmax(240px,1fr));gap:16px}
`

func el(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node { return &html.Node{Type: html.TextNode, Data: s} }

func add(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		parent.AppendChild(c)
	}
	return parent
}

func textEl(a atom.Atom, s string, attrs ...string) *html.Node { return add(el(a, attrs...), text(s)) }

// swatchNodes renders palette entries; malformed colors are skipped so no
// catalog text ever reaches a style attribute unchecked.
func swatchNodes(colors []string, withLabel bool) []*html.Node {
	var out []*html.Node
	for _, c := range colors {
		if _, err := domain.ParseHex(c); err != nil {
			continue
		}
		sw := el(atom.Span, "class", "color-swatch", "style", "background-color:"+c, "title", c)
		if !withLabel {
			out = append(out, sw)
			continue
		}
		out = append(out, add(el(atom.Div, "class", "modal__color"), sw, textEl(atom.Code, c)))
	}
	return out
}

func list(items []string) *html.Node {
	ul := el(atom.Ul)
	for _, it := range items {
		add(ul, textEl(atom.Li, it))
	}
	return ul
}

func detailBlock(title string, body *html.Node) *html.Node {
	return add(el(atom.Div, "class", "modal__detail"), textEl(atom.H4, title), body)
}

func cardNode(c view.CardView) *html.Node {
	id := strconv.Itoa(c.ID)
	return add(el(atom.Article, "class", "project-card", "id", "card-"+id, "data-project-id", id),
		add(el(atom.Div, "class", "project-card__colors"), swatchNodes(c.Colors, false)...),
		textEl(atom.H3, c.Title, "class", "project-card__title"),
		textEl(atom.P, c.Category, "class", "project-card__category"),
		textEl(atom.P, c.Description, "class", "project-card__description"),
		textEl(atom.A, "View details", "class", "project-card__more", "href", "#project-"+id),
	)
}

func detailNode(d view.DetailView) *html.Node {
	id := strconv.Itoa(d.ID)
	return add(el(atom.Article, "class", "modal__content", "id", "project-"+id),
		add(el(atom.Div, "class", "modal__image"), textEl(atom.Span, d.Caption)),
		textEl(atom.H2, d.Title, "class", "modal__title"),
		textEl(atom.Div, d.Heading, "class", "modal__category"),
		textEl(atom.P, d.Description, "class", "modal__description"),
		add(el(atom.Div, "class", "modal__details"),
			detailBlock("Dimensions", textEl(atom.P, d.Dimensions)),
			detailBlock("Tools Used", list(d.Tools)),
			detailBlock("Target Audience", textEl(atom.P, d.TargetAudience)),
			detailBlock("Style Keywords", textEl(atom.P, d.StyleKeywords)),
			detailBlock("Key Features", list(d.KeyFeatures)),
			detailBlock("Color Palette", add(el(atom.Div, "class", "modal__colors"), swatchNodes(d.Colors, true)...)),
		),
		textEl(atom.A, "Back to projects", "href", "#card-"+id),
	)
}

// Document builds the snapshot as an HTML node tree. Card links jump to the
// matching detail section, standing in for the modal.
func Document(snap Snapshot) *html.Node {
	nav := el(atom.Nav, "class", "filters")
	for _, c := range snap.Categories {
		class := "filter-btn"
		if c == snap.Filter {
			class += " active"
		}
		add(nav, textEl(atom.Span, c, "class", class, "data-category", c))
	}

	grid := el(atom.Section, "class", "portfolio__grid")
	if len(snap.Cards) == 0 {
		add(grid, textEl(atom.P, "No projects in this category.", "class", "empty"))
	}
	for _, c := range snap.Cards {
		add(grid, cardNode(c))
	}
	details := el(atom.Section, "class", "details")
	for _, d := range snap.Details {
		add(details, detailNode(d))
	}

	head := add(el(atom.Head),
		el(atom.Meta, "charset", "utf-8"),
		el(atom.Meta, "name", "viewport", "content", "width=device-width, initial-scale=1"),
		textEl(atom.Title, "Design Portfolio"),
		textEl(atom.Style, pageCSS),
	)
	body := add(el(atom.Body),
		add(el(atom.Header), textEl(atom.H1, "Design Portfolio")),
		nav,
		add(el(atom.Main), grid, details),
	)
	doc := &html.Node{Type: html.DocumentNode}
	add(doc, &html.Node{Type: html.DoctypeNode, Data: "html"}, add(el(atom.Html, "lang", "en"), head, body))
	return doc
}

// HTML renders the snapshot as a standalone page.
func HTML(w io.Writer, snap Snapshot) error {
	if err := html.Render(w, Document(snap)); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// HTMLFile writes the page to path.
func HTMLFile(path string, snap Snapshot) error {
	return writeFile(path, func(w io.Writer) error { return HTML(w, snap) })
}
