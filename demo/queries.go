package demo

import (
	"github.com/nickyhof/GamesDB/core"
	"github.com/nickyhof/GamesDB/db"
)

// Query is one step of a demonstration program.
type Query struct {
	Description string
	Title       string
	Statement   db.Statement
	Layout      core.ColumnSpec // nil selects the generic formatter
}

const joinScoresQuery = "SELECT Players.FirstName, PlayerGames.Score, Games.GameName " +
	"FROM Players " +
	"JOIN PlayerGames ON Players.PlayerID = PlayerGames.PlayerID " +
	"JOIN Games ON PlayerGames.GameID = Games.GameID " +
	"ORDER BY Players.FirstName ASC"

const gamesByGenreQuery = "SELECT * FROM Games WHERE Genre = ? AND ReleaseDate > ?"

var ClassroomQueries = []Query{
	{
		Description: "Simple SELECT Query",
		Title:       "All table content",
		Statement:   db.Statement{Query: "SELECT * FROM games"},
	},
	{
		Description: "JOIN Query - Players, PlayerGames and Games",
		Title:       "Players' Scores by Game",
		Statement:   db.Statement{Query: joinScoresQuery},
	},
	{
		Description: "Prepared Statement Query - Games by Genre and Release Date",
		Title:       "Action-Adventure Games Released After 1985",
		Statement: db.Statement{
			Query:  gamesByGenreQuery,
			Params: []core.Value{core.Text("Action-Adventure"), core.Text("1985-01-01")},
		},
	},
}

var GamesLayout = core.ColumnSpec{
	{Name: "GameID", Label: "Game ID", Type: core.IntType},
	{Name: "GameName", Label: "Game Name", Type: core.TextType},
	{Name: "ReleaseDate", Label: "Release Date", Type: core.DateType},
	{Name: "Genre", Label: "Genre", Type: core.TextType},
}

var ScoresLayout = core.ColumnSpec{
	{Name: "FirstName", Label: "First Name", Type: core.TextType},
	{Name: "Score", Label: "Score", Type: core.IntType},
	{Name: "GameName", Label: "Game Name", Type: core.TextType},
}

var StarterQueries = []Query{
	{
		Title:     "Query 1: Simple SELECT",
		Statement: db.Statement{Query: "SELECT * FROM games"},
		Layout:    GamesLayout,
	},
	{
		Title:     "Query 2: JOIN Query",
		Statement: db.Statement{Query: joinScoresQuery},
		Layout:    ScoresLayout,
	},
}

// StarterCountQuery only has its rows counted.
var StarterCountQuery = db.Statement{
	Query:  gamesByGenreQuery,
	Params: []core.Value{core.Text("Action"), core.Text("2020-01-01")},
}
