// Package export renders assembled documents to interchange formats.
package export

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/model"
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/overlay"
)

// DocumentHTML renders the assembled document as an HTML fragment: an
// article wrapping a section per page, with an h2 page header, a p per
// line, and a table element per detected table.
func DocumentHTML(doc *model.Document, withLabel bool) (string, error) {
	article := element("article")
	for _, page := range doc.Pages {
		article.AppendChild(pageSection(page, withLabel))
	}

	var sb strings.Builder
	if err := html.Render(&sb, article); err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}
	return sb.String(), nil
}

// pageSection builds the section node for one page, merging lines and
// tables in top-to-bottom order. At equal heights lines sort ahead of
// tables, matching the text render.
func pageSection(page *model.Page, withLabel bool) *html.Node {
	ov := overlay.New()

	section := element("section")
	h2 := element("h2")
	h2.AppendChild(textNode(fmt.Sprintf("Page # %d", page.Number)))
	section.AppendChild(h2)

	type block struct {
		top  float64
		node *html.Node
	}
	blocks := make([]block, 0, len(page.Lines)+len(page.Tables))
	for _, line := range page.Lines {
		p := element("p")
		p.AppendChild(textNode(ov.RenderLine(line, withLabel)))
		blocks = append(blocks, block{top: line.Top(), node: p})
	}
	for _, t := range page.Tables {
		blocks = append(blocks, block{top: t.Top(), node: tableNode(t, withLabel)})
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].top < blocks[j].top
	})

	for _, b := range blocks {
		section.AppendChild(b.node)
	}
	return section
}

// tableNode builds a table element: one th per header name, one tr per
// body row with a td per column.
func tableNode(t *model.Table, withLabel bool) *html.Node {
	table := element("table")

	headRow := element("tr")
	for _, name := range t.HeaderNames {
		th := element("th")
		th.AppendChild(textNode(name))
		headRow.AppendChild(th)
	}
	thead := element("thead")
	thead.AppendChild(headRow)
	table.AppendChild(thead)

	tbody := element("tbody")
	for _, row := range t.Rows {
		tr := element("tr")
		for _, cell := range row {
			td := element("td")
			td.AppendChild(textNode(model.CellText(cell, withLabel)))
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)

	return table
}

func element(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag}
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
