package web

import (
	"bytes"
	"html/template"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/domain"
)

type templates struct {
	page  *template.Template
	game  *template.Template
	index *template.Template
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"iter": func(n int) []int {
			a := make([]int, n)
			for i := range a {
				a[i] = i
			}
			return a
		},
		"add": func(a, b int) int { return a + b },
		"mul": func(a, b int) int { return a * b },
	}
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Tic-Tac-Toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>
.board-row { display: flex; }
.square { width: 3em; height: 3em; font-size: 1.5em; }
.square.winning-square { background: #bb86fc; }
.current { font-weight: bold; }
</style>
</head><body>{{template "content" .}}</body></html>`))
	// Define the game fragment within the same set so the page can include it
	template.Must(base.New("game").Parse(gameTemplate))
	index := template.Must(base.Clone())
	template.Must(index.New("content").Parse(`<h1>Tic-Tac-Toe</h1><form action="/game" method="post"><button>New game</button></form>`))
	page := template.Must(base.Clone())
	template.Must(page.New("content").Parse(`<h1>Tic-Tac-Toe</h1>{{template "game" .}}`))
	// Standalone fragment returned to htmx requests
	game := template.Must(template.New("game_only").Funcs(funcs()).Parse(gameTemplate))
	return &templates{page: page, game: game, index: index}
}

func renderTemplate(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const gameTemplate = `
<div id="game" class="game" data-status="{{.View.Status.Kind}}">
  <div class="status">{{.View.Status}}</div>
  <div class="game-board">
  {{range $r := iter 3}}
  <div class="board-row">
    {{range $c := iter 3}}{{$i := add (mul $r 3) $c}}
    <button class="square{{if $.View.OnWinningLine $i}} winning-square{{end}}" data-index="{{$i}}" data-value="{{index $.View.Grid $i}}"
      hx-post="/game/{{$.ID}}/cells/{{$i}}" hx-target="#game" hx-swap="outerHTML"{{if $.View.Status.Over}} disabled{{end}}>{{index $.View.Grid $i}}</button>
    {{end}}
  </div>
  {{end}}
  </div>
  <div class="game-info">
    <h2>Move history</h2>
    <ol start="0">
    {{range $i, $label := .View.HistoryLabels}}
      {{if eq $i $.View.CurrentIndex}}
      <li class="current">{{$label}}</li>
      {{else}}
      <li><button hx-post="/game/{{$.ID}}/history/{{$i}}" hx-target="#game" hx-swap="outerHTML">{{$label}}</button></li>
      {{end}}
    {{end}}
    </ol>
    <form action="/game/{{.ID}}/restart" method="post"><button>Restart</button></form>
  </div>
</div>
`

// gameData is what the game fragment renders.
type gameData struct {
	ID   string
	View domain.ViewModel
}

func newGameData(snap app.Snapshot) gameData {
	return gameData{ID: snap.ID, View: snap.View}
}
