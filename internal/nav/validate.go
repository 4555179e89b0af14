package nav

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

const (
	maxLabelLength   = 50
	maxTopLevelItems = 20
	errorPenalty     = 20
	warningPenalty   = 5
)

var menuNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_]+$`)

// Issue is a single finding of Validate.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	ItemID   string   `json:"itemId,omitempty"`
}

// Report summarises the structural health of a menu. Score starts at 100 and loses 20 points per
// error and 5 per warning, clamped to [0, 100].
type Report struct {
	IsValid         bool     `json:"isValid"`
	Score           int      `json:"score"`
	Issues          []Issue  `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// Errors returns the error-severity issues.
func (r Report) Errors() []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			out = append(out, issue)
		}
	}
	return out
}

// Validate checks menu fields, tree depth, link targets, duplicate ids and accessibility hints.
func Validate(menu domain.NavigationMenu) Report {
	var issues []Issue
	var recommendations []string

	issues = append(issues, fieldIssues(menu)...)

	for _, item := range menu.Items {
		if !ValidateDepth(item, 0) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  fmt.Sprintf("Menu exceeds maximum depth of %d levels", MaxDepth),
				ItemID:   item.ID,
			})
		}
	}

	seen := make(map[string]struct{})
	for _, flat := range Flatten(menu.Items) {
		item := flat.Item
		if item.ID != "" {
			if _, dup := seen[item.ID]; dup {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Message:  fmt.Sprintf("Duplicate item id: %s", item.ID),
					ItemID:   item.ID,
				})
			}
			seen[item.ID] = struct{}{}
		}
		if issue, ok := urlIssue(item); ok {
			issues = append(issues, issue)
		}
	}

	for _, item := range menu.Items {
		if item.HasChildren() && strings.TrimSpace(item.Description) == "" {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Message:  "Menu items with children should have descriptions for accessibility",
				ItemID:   item.ID,
			})
		}
		if utf8.RuneCountInString(item.Label) > maxLabelLength {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Message:  "Menu item labels should be concise for mobile devices",
				ItemID:   item.ID,
			})
		}
	}

	if len(menu.Items) > maxTopLevelItems {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Message:  "Menu has many items which may impact performance",
			ItemID:   menu.ID,
		})
		recommendations = append(recommendations, "Consider splitting large menus into sub-menus")
	}

	errorCount, warningCount := 0, 0
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errorCount++
		case SeverityWarning:
			warningCount++
		}
	}
	score := 100 - errorCount*errorPenalty - warningCount*warningPenalty
	score = max(0, min(100, score))

	if errorCount > 0 {
		recommendations = append(recommendations, "Fix all errors before publishing the menu")
	}
	if !menu.Settings.ShowIcons {
		recommendations = append(recommendations, "Consider enabling icons for better visual hierarchy")
	}
	if len(menu.Items) == 0 {
		recommendations = append(recommendations, "Add menu items to make the menu functional")
	}

	if issues == nil {
		issues = []Issue{}
	}
	if recommendations == nil {
		recommendations = []string{}
	}
	return Report{
		IsValid:         errorCount == 0,
		Score:           score,
		Issues:          issues,
		Recommendations: recommendations,
	}
}

func fieldIssues(menu domain.NavigationMenu) []Issue {
	err := validation.ValidateStruct(&menu,
		validation.Field(&menu.Name,
			validation.Required.Error("Menu name is required"),
			validation.Match(menuNamePattern).Error("Menu name contains invalid characters"),
		),
		validation.Field(&menu.Type,
			validation.Required.Error("Valid menu type is required"),
			validation.In(
				domain.NavigationMenuMain,
				domain.NavigationMenuFooter,
				domain.NavigationMenuMobile,
				domain.NavigationMenuAdmin,
			).Error("Valid menu type is required"),
		),
	)
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []Issue{{Severity: SeverityError, Message: err.Error()}}
	}
	keys := make([]string, 0, len(fieldErrs))
	for key := range fieldErrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	issues := make([]Issue, 0, len(keys))
	for _, key := range keys {
		issues = append(issues, Issue{Severity: SeverityError, Message: fieldErrs[key].Error()})
	}
	return issues
}

func urlIssue(item domain.NavigationItem) (Issue, bool) {
	if item.URL == "" {
		return Issue{}, false
	}
	if item.IsExternal {
		parsed, err := url.Parse(item.URL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return Issue{
				Severity: SeverityError,
				Message:  fmt.Sprintf("Invalid external URL: %s", item.URL),
				ItemID:   item.ID,
			}, true
		}
		return Issue{}, false
	}
	if !strings.HasPrefix(item.URL, "/") {
		return Issue{
			Severity: SeverityError,
			Message:  fmt.Sprintf("Internal URLs must start with '/': %s", item.URL),
			ItemID:   item.ID,
		}, true
	}
	return Issue{}, false
}
