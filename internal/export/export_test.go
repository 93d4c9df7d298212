package export

import (
	"strings"
	"testing"

	"eodly/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReports() []model.Report {
	return []model.Report{
		{
			ID: "r-1", UserID: "u-1", UserName: "Riley", UserMBTI: "INTJ",
			Date:            "2024-01-02",
			Status:          model.StatusDone,
			Content:         `Shipped "exports" feature`,
			Blockers:        "None really",
			PlanForTomorrow: "Docs",
			Breaks:          []model.BreakInterval{{ID: "b1", Start: "12:00 PM", End: "12:30 PM"}},
			Links:           []string{"https://example.com/pr/9", "wiki.internal/page"},
			Files:           []model.FileMeta{{Name: "report.pdf", Type: "application/pdf"}},
			WorkHours:       model.WorkHours{Start: "9:00 AM", End: "5:00 PM"},
		},
		{
			ID: "r-2", UserID: "u-2", UserName: "Sam",
			Date:      "2024-01-03",
			Status:    model.StatusDone,
			Content:   "Reviewed PRs",
			WorkHours: model.WorkHours{Start: "--:-- --", End: "--:-- --"},
		},
		{ID: "r-3", UserID: "u-1", Date: "2024-01-02", IsDraft: true, Content: "draft"},
	}
}

func TestFilterByDateAndUser(t *testing.T) {
	reports := sampleReports()

	single := Filter(reports, Selection{UserID: "all", StartDate: "2024-01-02"})
	require.Len(t, single, 1)
	assert.Equal(t, "r-1", single[0].ID, "drafts are excluded")

	ranged := Filter(reports, Selection{UserID: "all", StartDate: "2024-01-01", EndDate: "2024-01-05", RangeMode: true})
	assert.Len(t, ranged, 2)

	mine := Filter(reports, Selection{UserID: "u-2", StartDate: "2024-01-01", EndDate: "2024-01-05", RangeMode: true})
	require.Len(t, mine, 1)
	assert.Equal(t, "r-2", mine[0].ID)

	none := Filter(reports, Selection{UserID: "all", StartDate: "2023-12-01"})
	assert.Empty(t, none)
}

func TestCSVFormat(t *testing.T) {
	data, err := CSV(Filter(sampleReports(), Selection{StartDate: "2024-01-01", EndDate: "2024-01-05", RangeMode: true}))
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, "\uFEFF"), "UTF-8 BOM")

	lines := strings.Split(strings.TrimPrefix(s, "\uFEFF"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Member,MBTI,Shift Start,Shift End,Break Log,Achievements,Blockers,Plan for Tomorrow,Links,Files", lines[0])

	assert.Contains(t, lines[1], `2024-01-02,"Riley",INTJ,9:00 AM,5:00 PM`)
	assert.Contains(t, lines[1], `"Shipped ""exports"" feature"`, "inner quotes doubled")
	assert.Contains(t, lines[1], `"12:00 PM-12:30 PM"`)
	assert.Contains(t, lines[1], `"https://example.com/pr/9 | wiki.internal/page"`)
	assert.Contains(t, lines[1], `"report.pdf"`)

	assert.Contains(t, lines[2], `2024-01-03,"Sam",N/A`)
	assert.Contains(t, lines[2], `"None"`, "empty collections render as None")
}

func TestCSVEmptySelection(t *testing.T) {
	_, err := CSV(nil)
	assert.ErrorIs(t, err, ErrNoReports)
}

func TestPrintableHTML(t *testing.T) {
	sel := Selection{StartDate: "2024-01-01", EndDate: "2024-01-05", RangeMode: true}
	data, err := PrintableHTML(Filter(sampleReports(), sel), sel)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "EODly Export")
	assert.Contains(t, s, "Period: 2024-01-01 to 2024-01-05")
	assert.Contains(t, s, "Riley")
	assert.Contains(t, s, "MBTI: INTJ")
	assert.Contains(t, s, "Shipped &#34;exports&#34; feature")
	assert.Contains(t, s, `href="https://example.com/pr/9"`)
	assert.Contains(t, s, `href="https://wiki.internal/page"`, "scheme-less links get https")
	assert.Contains(t, s, "Current Blockers")
	assert.NotContains(t, s, "draft")
}

func TestSummaryHTML(t *testing.T) {
	data, err := SummaryHTML(sampleReports()[:2])
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "EODly Team Summary")
	assert.Contains(t, s, "Riley (INTJ)")
	assert.Contains(t, s, "Sam (N/A)")
	assert.Contains(t, s, "report.pdf")
}

func TestXLSX(t *testing.T) {
	data, err := XLSX(sampleReports()[:2])
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	// XLSX containers are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestXLSXEmptySelection(t *testing.T) {
	_, err := XLSX(nil)
	assert.ErrorIs(t, err, ErrNoReports)
}

func TestMailComposeURL(t *testing.T) {
	u := MailComposeURL("Riley", "2024-01-02", "Today I shipped exports")
	assert.True(t, strings.HasPrefix(u, "https://mail.google.com/mail/?"))
	assert.Contains(t, u, "view=cm")
	assert.Contains(t, u, "su=EOD+Report+%7C+Riley+%E2%80%93+2024-01-02")
	assert.Contains(t, u, "body=Today+I+shipped+exports")
}

func TestRangeLabel(t *testing.T) {
	assert.Equal(t, "2024-01-02", Selection{StartDate: "2024-01-02"}.RangeLabel())
	assert.Equal(t, "2024-01-02_to_2024-01-05",
		Selection{StartDate: "2024-01-02", EndDate: "2024-01-05", RangeMode: true}.RangeLabel())
}
