package matches

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"id", "date", "unit_id", "category", "kind", "opponent", "venue",
	"goals_for", "goals_against", "outcome",
}

func exportRow(m Match) []string {
	return []string{
		strconv.FormatInt(m.ID, 10),
		m.Date,
		strconv.FormatInt(m.UnitID, 10),
		string(m.Category),
		string(m.Kind),
		m.Opponent,
		string(m.Venue),
		strconv.Itoa(m.GoalsFor),
		strconv.Itoa(m.GoalsAgainst),
		string(m.Outcome()),
	}
}

// WriteCSV writes list with a header row. The output can be imported back.
func WriteCSV(w io.Writer, list []Match) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, m := range list {
		if err := cw.Write(exportRow(m)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes list as a single-sheet workbook.
func WriteXLSX(w io.Writer, list []Match) error {
	f := excelize.NewFile()
	defer f.Close()
	sh := f.GetSheetName(0)
	if err := f.SetSheetRow(sh, "A1", &exportHeader); err != nil {
		return err
	}
	for i, m := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := exportRow(m)
		if err := f.SetSheetRow(sh, cell, &row); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}
