package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/rybkr/wordsearch/internal/board"
)

// Page is one puzzle to include in an HTML document.
type Page struct {
	Grid       *board.Grid
	Words      []string
	Placements []board.Placement
}

const htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Word Search Puzzles</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        h2 {
            color: #666;
            margin-top: 20px;
            margin-bottom: 15px;
            font-size: 1.2em;
        }
        .ws-grid table {
            border-collapse: collapse;
            margin: 0 auto;
            font-family: 'Courier New', monospace;
            font-size: 22px;
        }
        .ws-grid td {
            width: 32px;
            height: 32px;
            text-align: center;
            vertical-align: middle;
            padding: 0;
        }
        .ws-grid td.hit {
            background-color: #ffe08a;
            font-weight: bold;
        }
        .ws-words {
            columns: 4;
            list-style: none;
            padding: 0;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// HTML writes a document with each puzzle on its own page followed by a
// page with its answer key.
func HTML(w io.Writer, pages []Page) error {
	if _, err := io.WriteString(w, htmlHeader); err != nil {
		return err
	}

	for i, p := range pages {
		_, err := fmt.Fprintf(w, `    <div class="page">
        <h1>Word Search #%d</h1>
        %s
        %s
    </div>
    <div class="page">
        <h1>Word Search #%d</h1>
        <h2>Answers</h2>
        %s
    </div>
`, i+1, gridToHTML(p.Grid, nil), wordsToHTML(p.Words), i+1, gridToHTML(p.Grid, p.Placements))
		if err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, htmlFooter)
	return err
}

// gridToHTML converts a grid to an HTML table, marking cells covered by
// any of placements.
func gridToHTML(g *board.Grid, placements []board.Placement) string {
	hits := make(map[board.Cell]bool)
	for _, p := range placements {
		for _, cell := range p.Cells() {
			hits[cell] = true
		}
	}

	var sb strings.Builder
	sb.WriteString("<div class=\"ws-grid\"><table>")

	for row := range g.Rows() {
		sb.WriteString("<tr>")
		for col := range g.Cols() {
			cellClass := ""
			if hits[board.Cell{Row: row, Col: col}] {
				cellClass = "hit"
			}
			ch := g.Get(row, col)
			if ch == board.Blank {
				ch = '.'
			}
			sb.WriteString(fmt.Sprintf("<td class=\"%s\">%c</td>", cellClass, ch))
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div>")
	return sb.String()
}

func wordsToHTML(words []string) string {
	var sb strings.Builder
	sb.WriteString("<ul class=\"ws-words\">")
	for _, w := range words {
		sb.WriteString("<li>")
		sb.WriteString(html.EscapeString(w))
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}
