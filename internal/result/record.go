package result

// Column labels recognized in result-table header rows. These are also
// the JSON keys the records serialize under.
const (
	ColDate               = "Date"
	ColOpponent           = "Opponent"
	ColClass              = "Class"
	ColOpponentRecord     = "W-L"
	ColOutcome            = "W/L"
	ColScore              = "Score"
	ColPoints             = "Points"
	ColTournamentName     = "Tournament Name"
	ColTournamentLocation = "Tournament Location"
	ColSite               = "Site"
	ColTime               = "Time"
	ColHomeAway           = "Home/Away"
	ColDiv                = "Div"
)

// Columns lists every recognized column label.
var Columns = []string{
	ColDate,
	ColOpponent,
	ColClass,
	ColOpponentRecord,
	ColOutcome,
	ColScore,
	ColPoints,
	ColTournamentName,
	ColTournamentLocation,
	ColSite,
	ColTime,
	ColHomeAway,
	ColDiv,
}

// Record is one schedule/result entry for a team. The column fields are
// optional: a field is set only when the source table's header had that
// column and the row had a cell at its position. The derived fields are
// always set by the extractor.
type Record struct {
	Date               string `json:"Date,omitempty"`
	Opponent           string `json:"Opponent,omitempty"`
	Class              string `json:"Class,omitempty"`
	OpponentRecord     string `json:"W-L,omitempty"`
	Outcome            string `json:"W/L,omitempty"`
	Score              string `json:"Score,omitempty"`
	Points             string `json:"Points,omitempty"`
	TournamentName     string `json:"Tournament Name,omitempty"`
	TournamentLocation string `json:"Tournament Location,omitempty"`
	Site               string `json:"Site,omitempty"`
	Time               string `json:"Time,omitempty"`
	HomeAway           string `json:"Home/Away,omitempty"`
	Div                string `json:"Div,omitempty"`

	// Team is the owning team's name with the trailing win-loss
	// parenthetical stripped; TeamDisplay is the raw caption text.
	Team        string `json:"_team"`
	TeamDisplay string `json:"_team_display"`
	// EffectiveClass is the record's own Class value when non-empty,
	// otherwise the classification code of the source page.
	EffectiveClass string `json:"_class"`
}

// SetColumn assigns value to the field for the given column label.
// Unrecognized labels are ignored and reported as false.
func (r *Record) SetColumn(label, value string) bool {
	switch label {
	case ColDate:
		r.Date = value
	case ColOpponent:
		r.Opponent = value
	case ColClass:
		r.Class = value
	case ColOpponentRecord:
		r.OpponentRecord = value
	case ColOutcome:
		r.Outcome = value
	case ColScore:
		r.Score = value
	case ColPoints:
		r.Points = value
	case ColTournamentName:
		r.TournamentName = value
	case ColTournamentLocation:
		r.TournamentLocation = value
	case ColSite:
		r.Site = value
	case ColTime:
		r.Time = value
	case ColHomeAway:
		r.HomeAway = value
	case ColDiv:
		r.Div = value
	default:
		return false
	}
	return true
}

// Column returns the field value for the given column label.
func (r *Record) Column(label string) string {
	switch label {
	case ColDate:
		return r.Date
	case ColOpponent:
		return r.Opponent
	case ColClass:
		return r.Class
	case ColOpponentRecord:
		return r.OpponentRecord
	case ColOutcome:
		return r.Outcome
	case ColScore:
		return r.Score
	case ColPoints:
		return r.Points
	case ColTournamentName:
		return r.TournamentName
	case ColTournamentLocation:
		return r.TournamentLocation
	case ColSite:
		return r.Site
	case ColTime:
		return r.Time
	case ColHomeAway:
		return r.HomeAway
	case ColDiv:
		return r.Div
	}
	return ""
}

// IsBlank reports whether every column field is empty or a bare hyphen.
// Such rows are visual filler on the source pages and are discarded. The
// derived fields do not participate; the extractor always sets them.
func (r *Record) IsBlank() bool {
	for _, label := range Columns {
		if v := r.Column(label); v != "" && v != "-" {
			return false
		}
	}
	return true
}

// ResolveClass sets EffectiveClass from the record's own Class column
// when non-empty, falling back to the source page's classification code.
func (r *Record) ResolveClass(code string) {
	if r.Class != "" {
		r.EffectiveClass = r.Class
	} else {
		r.EffectiveClass = code
	}
}

// Won reports whether the record's W/L column marks a win.
func (r *Record) Won() bool {
	return len(r.Outcome) > 0 && (r.Outcome[0] == 'W' || r.Outcome[0] == 'w')
}

// Lost reports whether the record's W/L column marks a loss.
func (r *Record) Lost() bool {
	return len(r.Outcome) > 0 && (r.Outcome[0] == 'L' || r.Outcome[0] == 'l')
}
