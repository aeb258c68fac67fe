package apifootball

import "encoding/json"

type playersResponse struct {
	Errors   json.RawMessage  `json:"errors"`
	Results  int              `json:"results"`
	Paging   pagingResponse   `json:"paging"`
	Response []playerEnvelope `json:"response"`
}

type pagingResponse struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type playerEnvelope struct {
	Player     playerResponse       `json:"player"`
	Statistics []statisticsResponse `json:"statistics"`
}

type playerResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         *int   `json:"age"`
	Nationality string `json:"nationality"`
	Photo       string `json:"photo"`
}

type statisticsResponse struct {
	Team  teamResponse  `json:"team"`
	Games gamesResponse `json:"games"`
}

type teamResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type gamesResponse struct {
	Position string `json:"position"`
	Number   *int   `json:"number"`
}
