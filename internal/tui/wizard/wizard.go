// ABOUTME: Interactive assumption form for planning runs
// ABOUTME: huh form pre-filled with defaults, parsed into planner inputs

package wizard

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/markalston/gtm-planner/models"
)

// Wizard collects planning assumptions and constraints interactively.
// huh fields bind to strings; Inputs parses and validates them.
type Wizard struct {
	form *huh.Form

	targetARR   string
	startingARR string
	ndrPercent  string
	commASP     string
	entASP      string
	commWin     string
	entWin      string
	mtgToSQO    string
	commQuota   string
	entQuota    string
	amQuota     string

	minCommAE  string
	minEntAE   string
	maxTotalAE string
	bdrComm    string
	bdrEnt     string
	bdrBudget  string
}

// New creates a wizard pre-filled with the given inputs.
func New(a models.AssumptionSet, c models.Constraints) *Wizard {
	w := &Wizard{
		targetARR:   formatNum(a.TargetARR),
		startingARR: formatNum(a.StartingARR),
		ndrPercent:  formatNum(a.NDRPercent),
		commASP:     formatNum(a.CommASP),
		entASP:      formatNum(a.EntASP),
		commWin:     formatNum(a.CommWinRate),
		entWin:      formatNum(a.EntWinRate),
		mtgToSQO:    formatNum(a.MtgToSQORate),
		commQuota:   formatNum(a.CommQuota),
		entQuota:    formatNum(a.EntQuota),
		amQuota:     formatNum(a.AMQuota),
		minCommAE:   formatNum(c.MinCommAE),
		minEntAE:    formatNum(c.MinEntAE),
		maxTotalAE:  formatNum(c.MaxTotalAE),
		bdrComm:     formatNum(c.BDRMeetingsComm),
		bdrEnt:      formatNum(c.BDRMeetingsEnt),
		bdrBudget:   formatNum(c.BDRBudget),
	}
	w.form = w.createForm()
	return w
}

func (w *Wizard) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			numInput("Target ARR ($)", &w.targetARR),
			numInput("Starting ARR ($)", &w.startingARR),
			numInput("Net Dollar Retention (%)", &w.ndrPercent),
			numInput("Commercial ASP ($)", &w.commASP),
			numInput("Enterprise ASP ($)", &w.entASP),
		).Title("Revenue Assumptions"),
		huh.NewGroup(
			rateInput("Comm Win Rate", &w.commWin),
			rateInput("Ent Win Rate", &w.entWin),
			rateInput("Meeting to SQO Conversion", &w.mtgToSQO),
			numInput("Comm AE Quota ($)", &w.commQuota),
			numInput("Ent AE Quota ($)", &w.entQuota),
			numInput("AM Quota ($)", &w.amQuota),
		).Title("Rates & Quotas"),
		huh.NewGroup(
			numInput("Min Comm AEs", &w.minCommAE),
			numInput("Min Ent AEs", &w.minEntAE),
			numInput("Max Total AEs", &w.maxTotalAE),
			numInput("Comm BDR Meetings/mo", &w.bdrComm),
			numInput("Ent BDR Meetings/mo", &w.bdrEnt),
			numInput("Total BDR Budget", &w.bdrBudget),
		).Title("Hiring Constraints"),
	)
}

// Run presents the form and returns the parsed inputs.
func (w *Wizard) Run() (models.AssumptionSet, models.Constraints, error) {
	if err := w.form.Run(); err != nil {
		return models.AssumptionSet{}, models.Constraints{}, err
	}
	return w.Inputs()
}

// Inputs parses the bound field values. Field validators keep the
// values numeric; Validate on the records enforces the domain bounds.
func (w *Wizard) Inputs() (models.AssumptionSet, models.Constraints, error) {
	var a models.AssumptionSet
	var c models.Constraints
	var parseErr error

	parse := func(s string) float64 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("invalid number %q", s)
		}
		return v
	}

	a.TargetARR = parse(w.targetARR)
	a.StartingARR = parse(w.startingARR)
	a.NDRPercent = parse(w.ndrPercent)
	a.CommASP = parse(w.commASP)
	a.EntASP = parse(w.entASP)
	a.CommWinRate = parse(w.commWin)
	a.EntWinRate = parse(w.entWin)
	a.MtgToSQORate = parse(w.mtgToSQO)
	a.CommQuota = parse(w.commQuota)
	a.EntQuota = parse(w.entQuota)
	a.AMQuota = parse(w.amQuota)

	c.MinCommAE = parse(w.minCommAE)
	c.MinEntAE = parse(w.minEntAE)
	c.MaxTotalAE = parse(w.maxTotalAE)
	c.BDRMeetingsComm = parse(w.bdrComm)
	c.BDRMeetingsEnt = parse(w.bdrEnt)
	c.BDRBudget = parse(w.bdrBudget)

	if parseErr != nil {
		return models.AssumptionSet{}, models.Constraints{}, parseErr
	}
	if err := a.Validate(); err != nil {
		return models.AssumptionSet{}, models.Constraints{}, err
	}
	if err := c.Validate(); err != nil {
		return models.AssumptionSet{}, models.Constraints{}, err
	}
	return a, c, nil
}

func numInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		CharLimit(12).
		Value(value).
		Validate(validateNumber)
}

func rateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description("0 < rate <= 1").
		CharLimit(6).
		Value(value).
		Validate(validateRate)
}

func validateNumber(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func validateRate(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 || v > 1 {
		return fmt.Errorf("rate must be in (0,1]")
	}
	return nil
}

// formatNum renders a float without trailing zeros.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
