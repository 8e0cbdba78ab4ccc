package audit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"heuristicheck/internal/dom"
	"heuristicheck/internal/domain"
)

// SearchTextThreshold is the body text length, in characters, from which a page is expected to offer search.
const SearchTextThreshold = 1000

var helpKeywords = []string{"contact", "help", "faq", "support"}

type check struct {
	pass   bool
	issue  string
	remedy string
}

// evaluation is what a rule reports back to the engine: its checks and the elements to mark.
type evaluation struct {
	checks    []check
	offenders []dom.Handle
}

type rule struct {
	id       domain.RuleID
	name     string
	severity domain.Severity
	label    string
	eval     func(doc *dom.Document, threshold float64) (evaluation, error)
}

func hasClass(name string) string {
	return fmt.Sprintf("contains(concat(' ', normalize-space(@class), ' '), ' %s ')", name)
}

var ruleTable = []rule{
	{domain.RuleVisibility, "Visibility of System Status", domain.SeverityMedium, "Hard to Read", evalContrast},
	{domain.RuleRealWorld, "Match between System & Real World", domain.SeverityMedium, "", evalHeading},
	{domain.RuleUserControl, "User Control and Freedom", domain.SeverityHigh, "", evalHomeLink},
	{domain.RuleConsistency, "Consistency and Standards", domain.SeverityHigh, "Broken Link", evalLinks},
	{domain.RuleErrorPrevention, "Error Prevention", domain.SeverityHigh, "Mystery Input", evalInputs},
	{domain.RuleRecognition, "Recognition rather than Recall", domain.SeverityMedium, "Accessibility Risk", evalImages},
	{domain.RuleFlexibility, "Flexibility and Efficiency of Use", domain.SeverityMedium, "Too Small", evalFlexibility},
	{domain.RuleAesthetic, "Aesthetic and Minimalist Design", domain.SeverityLow, "Old Code", evalDeprecated},
	{domain.RuleErrorRecovery, "Help Users Recover from Errors", domain.SeverityMedium, "No Validation", evalForms},
	{domain.RuleHelp, "Help and Documentation", domain.SeverityLow, "", evalHelp},
}

// RuleName returns the display name of a rule.
func RuleName(id domain.RuleID) string {
	for _, r := range ruleTable {
		if r.id == id {
			return r.name
		}
	}
	return ""
}

func evalContrast(doc *dom.Document, threshold float64) (evaluation, error) {
	candidates, err := doc.Query("//h1 | //h2 | //h3 | //button | //a[" + hasClass("nav-link") + "]")
	if err != nil {
		return evaluation{}, err
	}
	var low []dom.Handle
	for _, h := range candidates {
		if IsLowContrast(doc, h, threshold) {
			low = append(low, h)
		}
	}
	return evaluation{
		checks: []check{{
			pass:   len(low) == 0,
			issue:  fmt.Sprintf("Found %d low contrast elements.", len(low)),
			remedy: "Increase contrast.",
		}},
		offenders: low,
	}, nil
}

func evalHeading(doc *dom.Document, _ float64) (evaluation, error) {
	h1, err := doc.Query("//h1")
	if err != nil {
		return evaluation{}, err
	}
	return evaluation{checks: []check{{pass: len(h1) > 0, issue: "No H1 found.", remedy: "Add an <h1> tag."}}}, nil
}

func evalHomeLink(doc *dom.Document, _ float64) (evaluation, error) {
	home, err := doc.Query("//a[@href='/' or @href='index.html'] | //*[" + hasClass("logo") + "]//a")
	if err != nil {
		return evaluation{}, err
	}
	return evaluation{checks: []check{{pass: len(home) > 0, issue: "No Home Link", remedy: "Add a link to Home."}}}, nil
}

func evalLinks(doc *dom.Document, _ float64) (evaluation, error) {
	links, err := doc.Query("//a")
	if err != nil {
		return evaluation{}, err
	}
	var broken []dom.Handle
	for _, h := range links {
		if IsBrokenLink(doc, h) {
			broken = append(broken, h)
		}
	}
	return evaluation{
		checks: []check{{
			pass:   len(broken) == 0,
			issue:  fmt.Sprintf("Found %d broken links.", len(broken)),
			remedy: "Fix href attributes.",
		}},
		offenders: broken,
	}, nil
}

func evalInputs(doc *dom.Document, _ float64) (evaluation, error) {
	inputs, err := doc.Query("//input")
	if err != nil {
		return evaluation{}, err
	}
	var unnamed []dom.Handle
	for _, h := range inputs {
		typ, _ := doc.Attr(h, "type")
		switch strings.ToLower(strings.TrimSpace(typ)) {
		case "hidden", "submit":
			continue
		}
		if IsUnlabeledInput(doc, h) {
			unnamed = append(unnamed, h)
		}
	}
	return evaluation{
		checks:    []check{{pass: len(unnamed) == 0, issue: "Inputs missing labels.", remedy: "Add labels."}},
		offenders: unnamed,
	}, nil
}

func evalImages(doc *dom.Document, _ float64) (evaluation, error) {
	images, err := doc.Query("//img")
	if err != nil {
		return evaluation{}, err
	}
	var missing []dom.Handle
	for _, h := range images {
		if alt, ok := doc.Attr(h, "alt"); !ok || strings.TrimSpace(alt) == "" {
			missing = append(missing, h)
		}
	}
	return evaluation{
		checks: []check{{
			pass:   len(missing) == 0,
			issue:  fmt.Sprintf("Found %d images missing Alt Text.", len(missing)),
			remedy: "Add alt text.",
		}},
		offenders: missing,
	}, nil
}

// evalFlexibility aggregates the touch target check and the search availability check.
func evalFlexibility(doc *dom.Document, _ float64) (evaluation, error) {
	controls, err := doc.Query("//button | //a[" + hasClass("btn") + "] | //*[@role='button']")
	if err != nil {
		return evaluation{}, err
	}
	var small []dom.Handle
	for _, h := range controls {
		if IsUndersized(doc, h) {
			small = append(small, h)
		}
	}

	search, err := doc.Query("//input | //*[" + hasClass("search") + "]")
	if err != nil {
		return evaluation{}, err
	}
	hasSearch := false
	for _, h := range search {
		if doc.Tag(h) == "input" {
			typ, _ := doc.Attr(h, "type")
			if !strings.EqualFold(strings.TrimSpace(typ), "search") {
				continue
			}
		}
		hasSearch = true
		break
	}
	dense := utf8.RuneCountInString(doc.BodyText()) >= SearchTextThreshold

	return evaluation{
		checks: []check{
			{
				pass:   len(small) == 0,
				issue:  fmt.Sprintf("Found %d small buttons.", len(small)),
				remedy: "Resize to 44x44px.",
			},
			{pass: hasSearch || !dense, issue: "No Search Bar", remedy: "Add search."},
		},
		offenders: small,
	}, nil
}

func evalDeprecated(doc *dom.Document, _ float64) (evaluation, error) {
	legacy, err := doc.Query("//font | //center | //big | //marquee")
	if err != nil {
		return evaluation{}, err
	}
	var found []dom.Handle
	for _, h := range legacy {
		if IsDeprecatedTag(doc.Tag(h)) {
			found = append(found, h)
		}
	}
	return evaluation{
		checks:    []check{{pass: len(found) == 0, issue: "Deprecated tags found.", remedy: "Use CSS."}},
		offenders: found,
	}, nil
}

func evalForms(doc *dom.Document, _ float64) (evaluation, error) {
	forms, err := doc.Query("//form")
	if err != nil {
		return evaluation{}, err
	}
	validated := 0
	for _, f := range forms {
		required, err := doc.QueryWithin(f, ".//*[@required]")
		if err != nil {
			return evaluation{}, err
		}
		if len(required) > 0 {
			validated++
		}
	}
	pass := len(forms) == 0 || validated > 0
	ev := evaluation{checks: []check{{pass: pass, issue: "Forms missing validation.", remedy: "Add required attributes."}}}
	if !pass {
		ev.offenders = forms
	}
	return ev, nil
}

func evalHelp(doc *dom.Document, _ float64) (evaluation, error) {
	text := strings.ToLower(doc.BodyText())
	found := false
	for _, kw := range helpKeywords {
		if strings.Contains(text, kw) {
			found = true
			break
		}
	}
	return evaluation{checks: []check{{pass: found, issue: "No Help Links", remedy: "Add FAQ/Help link."}}}, nil
}
