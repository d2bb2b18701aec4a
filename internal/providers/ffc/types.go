package ffc

type adpResponse struct {
	Players []adpPlayer `json:"players"`
	Meta    adpMeta     `json:"meta"`
}

type adpPlayer struct {
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Team         string  `json:"team"`
	ADP          float64 `json:"adp"`
	PositionRank string  `json:"position_rank"`
}

type adpMeta struct {
	Type    string `json:"type"`
	Teams   int    `json:"teams"`
	Rounds  int    `json:"rounds"`
	TotalPl int    `json:"total_players"`
}
