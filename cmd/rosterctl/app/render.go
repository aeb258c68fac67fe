package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/preston-bernstein/roster-filter-service/internal/app/roster"
	"github.com/preston-bernstein/roster-filter-service/internal/catalog"
)

func renderPlayers(w io.Writer, view roster.View) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Age", "Nationality", "Position", "Number")
	for _, p := range view.Players {
		number := "-"
		if p.ShirtNumber != nil {
			number = strconv.Itoa(*p.ShirtNumber)
		}
		if err := table.Append([]string{
			strconv.Itoa(p.ID),
			p.Name,
			strconv.Itoa(p.Age),
			p.Nationality,
			p.Position,
			number,
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d players; nationalities: %s\n", view.Count, strings.Join(view.Nationalities, ", "))
	return err
}

func renderLeagues(w io.Writer, cat catalog.Catalog) error {
	table := tablewriter.NewWriter(w)
	table.Header("Code", "ID", "Name")
	for _, l := range cat.Leagues {
		if err := table.Append([]string{l.Code, strconv.Itoa(l.ID), l.Name}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "season %s\n", cat.Season)
	return err
}
