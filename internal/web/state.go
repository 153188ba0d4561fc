package web

import (
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/domain"
)

type moveResponse struct {
	Index  int    `json:"index"`
	Symbol string `json:"symbol"`
}

// stateResponse is the JSON form of a session's view model.
type stateResponse struct {
	ID            string              `json:"id"`
	Grid          [domain.Size]string `json:"grid"`
	Status        string              `json:"status"`
	Symbol        string              `json:"symbol,omitempty"`
	Message       string              `json:"message"`
	WinningLine   []int               `json:"winning_line"`
	HistoryLabels []string            `json:"history_labels"`
	CurrentIndex  int                 `json:"current_index"`
	Moves         []moveResponse      `json:"moves"`
}

func newStateResponse(gs app.Snapshot) stateResponse {
	v := gs.View
	resp := stateResponse{
		ID:            gs.ID,
		Status:        v.Status.Kind.String(),
		Symbol:        v.Status.Symbol.String(),
		Message:       v.Status.String(),
		WinningLine:   []int{},
		HistoryLabels: v.HistoryLabels,
		CurrentIndex:  v.CurrentIndex,
		Moves:         make([]moveResponse, 0, len(gs.Moves)),
	}
	for i, c := range v.Grid {
		resp.Grid[i] = c.String()
	}
	resp.WinningLine = append(resp.WinningLine, v.WinningLine...)
	for _, m := range gs.Moves {
		resp.Moves = append(resp.Moves, moveResponse{Index: m.Index, Symbol: m.Symbol.String()})
	}
	return resp
}
