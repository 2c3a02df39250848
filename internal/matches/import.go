package matches

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"
)

// RowError reports a spreadsheet row that could not become a Match. Such
// rows are skipped; the rest of the file is still imported.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }

var errNoOpponent = errors.New("missing opponent")

// parseImport reads a CSV or XLSX file from a multipart form file.
func parseImport(fh *multipart.FileHeader) ([]Match, []RowError, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	file, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	switch ext {
	case ".csv":
		return parseCSV(file)
	case ".xlsx":
		b, err := io.ReadAll(io.LimitReader(file, 10<<20))
		if err != nil {
			return nil, nil, err
		}
		return parseXLSX(b)
	default:
		return nil, nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

func parseCSV(r io.Reader) ([]Match, []RowError, error) {
	br := bufio.NewReader(r)
	// Peek first line to guess delimiter
	line, _ := br.ReadString('\n')
	rest := io.MultiReader(strings.NewReader(line), br)
	reader := csv.NewReader(rest)
	reader.FieldsPerRecord = -1
	if strings.Count(line, ";") > strings.Count(line, ",") {
		reader.Comma = ';'
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("empty csv")
	}
	return convertRows(rows)
}

func parseXLSX(b []byte) ([]Match, []RowError, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("no sheet")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("empty sheet")
	}
	return convertRows(rows)
}

func convertRows(rows [][]string) ([]Match, []RowError, error) {
	cols := columnIndex(normHeaders(rows[0]))
	var out []Match
	var errs []RowError
	for i := 1; i < len(rows); i++ {
		if len(strings.TrimSpace(strings.Join(rows[i], ""))) == 0 {
			continue
		}
		m, err := rowToMatch(cols, rows[i])
		if err != nil {
			errs = append(errs, RowError{Row: i + 1, Err: err})
			continue
		}
		out = append(out, m)
	}
	return out, errs, nil
}

var foldPT = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a',
	'é': 'e', 'ê': 'e',
	'í': 'i',
	'ó': 'o', 'ô': 'o', 'õ': 'o',
	'ú': 'u',
	'ç': 'c',
}

// normalize headers: lower, letters/digits only, portuguese variants
func normHeaders(hdr []string) map[int]string {
	m := make(map[int]string, len(hdr))
	for i, h := range hdr {
		k := strings.ToLower(strings.TrimSpace(h))
		b := strings.Builder{}
		for _, r := range k {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				if f, ok := foldPT[r]; ok {
					r = f
				}
				b.WriteRune(r)
			}
		}
		k = b.String()
		switch k {
		case "data", "dia":
			k = "date"
		case "unidade", "unidadeid", "unitid":
			k = "unit"
		case "categoria":
			k = "category"
		case "tipo", "type":
			k = "kind"
		case "adversario", "oponente":
			k = "opponent"
		case "local", "mando":
			k = "venue"
		case "golspro", "golsfavor", "gf":
			k = "goalsfor"
		case "golscontra", "gc", "ga":
			k = "goalsagainst"
		case "resultado", "placar", "score":
			k = "result"
		}
		m[i] = k
	}
	return m
}

// columnIndex maps each normalized header to its first column, so a
// duplicated alias never shadows the leftmost one.
func columnIndex(h map[int]string) map[string]int {
	cols := make(map[string]int, len(h))
	for i := 0; i < len(h); i++ {
		if _, ok := cols[h[i]]; !ok {
			cols[h[i]] = i
		}
	}
	return cols
}

// parseScore reads "3-1" or "3 x 1".
func parseScore(s string) (gf, ga int, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, sep := range []string{"-", "x"} {
		parts := strings.SplitN(s, sep, 2)
		if len(parts) != 2 {
			continue
		}
		a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
		b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errA == nil && errB == nil && a >= 0 && b >= 0 {
			return a, b, true
		}
	}
	return 0, 0, false
}

// rowToMatch maps one row. Opponent and category are required; kind
// defaults to Friendly and venue to Home when blank.
func rowToMatch(cols map[string]int, row []string) (Match, error) {
	get := func(key string) string {
		if i, ok := cols[key]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	atoi := func(field string) (int, error) {
		s := get(field)
		if s == "" {
			return 0, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid %s %q", field, s)
		}
		return v, nil
	}

	m := Match{
		Date:     get("date"),
		Opponent: get("opponent"),
		Kind:     Friendly,
		Venue:    Home,
	}
	if m.Opponent == "" {
		return Match{}, errNoOpponent
	}

	cat, err := ParseCategory(get("category"))
	if err != nil {
		return Match{}, err
	}
	m.Category = cat

	if s := get("kind"); s != "" {
		if m.Kind, err = ParseKind(s); err != nil {
			return Match{}, err
		}
	}
	if s := get("venue"); s != "" {
		if m.Venue, err = ParseVenue(s); err != nil {
			return Match{}, err
		}
	}
	if s := get("unit"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return Match{}, fmt.Errorf("invalid unit %q", s)
		}
		m.UnitID = id
	}
	if m.GoalsFor, err = atoi("goalsfor"); err != nil {
		return Match{}, err
	}
	if m.GoalsAgainst, err = atoi("goalsagainst"); err != nil {
		return Match{}, err
	}
	// A score column wins over separate goal columns.
	if r := get("result"); r != "" {
		if gf, ga, ok := parseScore(r); ok {
			m.GoalsFor, m.GoalsAgainst = gf, ga
		}
	}
	return m, nil
}
