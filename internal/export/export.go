// Package export renders read-only bundles of submitted reports: CSV and
// XLSX tables, a printable HTML document, a shareable team summary, and the
// mail-provider compose deep link.
package export

import (
	"errors"
	"net/url"
	"strings"

	"eodly/internal/model"
)

// ErrNoReports means the selection matched nothing; callers surface it as a
// user-visible notice rather than producing an empty file.
var ErrNoReports = errors.New("no submitted reports for the selected date(s)")

// Selection narrows the export to a date or inclusive range, and optionally
// to a single user ("all" or empty keeps everyone).
type Selection struct {
	UserID    string
	StartDate string
	EndDate   string
	RangeMode bool
}

// RangeLabel is the filename fragment for the selected period.
func (s Selection) RangeLabel() string {
	if s.RangeMode {
		return s.StartDate + "_to_" + s.EndDate
	}
	return s.StartDate
}

// Filter keeps the submitted reports matching the selection.
func Filter(reports []model.Report, sel Selection) []model.Report {
	out := make([]model.Report, 0, len(reports))
	for _, r := range reports {
		if r.IsDraft {
			continue
		}
		if sel.UserID != "" && sel.UserID != "all" && r.UserID != sel.UserID {
			continue
		}
		if sel.RangeMode {
			if r.Date < sel.StartDate || r.Date > sel.EndDate {
				continue
			}
		} else if r.Date != sel.StartDate {
			continue
		}
		out = append(out, r)
	}
	return out
}

var csvHeader = []string{
	"Date", "Member", "MBTI", "Shift Start", "Shift End", "Break Log",
	"Achievements", "Blockers", "Plan for Tomorrow", "Links", "Files",
}

// CSV renders the reports as a UTF-8 CSV with a byte-order mark so
// spreadsheet tools pick up the encoding. Free-text fields are quote-wrapped
// with doubled inner quotes.
func CSV(reports []model.Report) ([]byte, error) {
	if len(reports) == 0 {
		return nil, ErrNoReports
	}

	var sb strings.Builder
	sb.WriteString("\uFEFF")
	sb.WriteString(strings.Join(csvHeader, ","))
	for _, r := range reports {
		sb.WriteString("\n")
		row := []string{
			r.Date,
			quote(r.UserName),
			orNA(r.UserMBTI),
			r.WorkHours.Start,
			r.WorkHours.End,
			quote(breakLog(r.Breaks)),
			quote(r.Content),
			quote(r.Blockers),
			quote(r.PlanForTomorrow),
			quote(linkLog(r.Links)),
			quote(fileLog(r.Files)),
		}
		sb.WriteString(strings.Join(row, ","))
	}
	return []byte(sb.String()), nil
}

// MailComposeURL builds the Gmail compose deep link for one report. This is a
// navigation target, not an API call.
func MailComposeURL(userName, date, body string) string {
	q := url.Values{}
	q.Set("view", "cm")
	q.Set("fs", "1")
	q.Set("to", "")
	q.Set("su", "EOD Report | "+userName+" – "+date)
	q.Set("body", body)
	return "https://mail.google.com/mail/?" + q.Encode()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func breakLog(breaks []model.BreakInterval) string {
	if len(breaks) == 0 {
		return "None"
	}
	parts := make([]string, len(breaks))
	for i, b := range breaks {
		parts[i] = b.Start + "-" + b.End
	}
	return strings.Join(parts, " | ")
}

func linkLog(links []string) string {
	if len(links) == 0 {
		return "None"
	}
	return strings.Join(links, " | ")
}

func fileLog(files []model.FileMeta) string {
	if len(files) == 0 {
		return "None"
	}
	parts := make([]string, len(files))
	for i, f := range files {
		parts[i] = f.Name
	}
	return strings.Join(parts, " | ")
}

func hrefFor(link string) string {
	if strings.HasPrefix(link, "http") {
		return link
	}
	return "https://" + link
}

func nonEmpty(links []string) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
