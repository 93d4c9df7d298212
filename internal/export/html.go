package export

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"eodly/internal/model"
)

type htmlLink struct {
	Href  string
	Label string
}

type htmlCard struct {
	Date      string
	UserName  string
	MBTI      string
	Shift     string
	Content   string
	Blockers  string
	Plan      string
	Links     []htmlLink
	FileNames string
}

func buildCards(reports []model.Report) []htmlCard {
	cards := make([]htmlCard, 0, len(reports))
	for _, r := range reports {
		c := htmlCard{
			Date:      r.Date,
			UserName:  r.UserName,
			MBTI:      orNA(r.UserMBTI),
			Shift:     r.WorkHours.Start + " - " + r.WorkHours.End,
			Content:   r.Content,
			Blockers:  r.Blockers,
			Plan:      r.PlanForTomorrow,
			FileNames: joinNames(r.Files),
		}
		for _, l := range nonEmpty(r.Links) {
			c.Links = append(c.Links, htmlLink{Href: hrefFor(l), Label: l})
		}
		cards = append(cards, c)
	}
	return cards
}

func joinNames(files []model.FileMeta) string {
	if len(files) == 0 {
		return ""
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	s := names[0]
	for _, n := range names[1:] {
		s += ", " + n
	}
	return s
}

var printableTmpl = template.Must(template.New("printable").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <title>EODly Export - {{.Range}}</title>
    <style>
      body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; padding: 40px; color: #1a202c; line-height: 1.5; background: #f8fafc; }
      .container { max-width: 900px; margin: 0 auto; background: white; padding: 50px; border-radius: 30px; box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1); }
      .header { border-bottom: 4px solid #001d3d; padding-bottom: 20px; margin-bottom: 40px; display: flex; justify-content: space-between; align-items: flex-end; }
      .header h2 { margin: 0; color: #001d3d; font-size: 32px; font-weight: 900; }
      .header .range { font-weight: 800; font-size: 14px; color: #5e888d; text-transform: uppercase; }
      .report-card { border: 1px solid #e2e8f0; border-radius: 20px; padding: 30px; margin-bottom: 30px; background: #ffffff; }
      .meta-row { display: flex; gap: 10px; margin-bottom: 20px; flex-wrap: wrap; }
      .pill { background: #f1f5f9; color: #001d3d; padding: 6px 14px; border-radius: 99px; font-size: 11px; font-weight: 800; text-transform: uppercase; border: 1px solid #e2e8f0; }
      .section-title { font-size: 10px; font-weight: 900; color: #94a3b8; text-transform: uppercase; letter-spacing: 1.5px; margin: 20px 0 8px 0; }
      .content { font-size: 14px; color: #334155; white-space: pre-wrap; background: #fcfcfc; padding: 15px; border-radius: 12px; border: 1px solid #f1f5f9; }
      @media print {
        body { background: white; padding: 0; }
        .container { box-shadow: none; border-radius: 0; padding: 0; }
        .report-card { page-break-inside: avoid; border: 1px solid #eee; }
      }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h2>EODly Export</h2>
        <div class="range">Period: {{.Period}}</div>
      </div>
      {{range .Cards}}
      <div class="report-card">
        <div class="meta-row">
          <span class="pill">{{.Date}}</span>
          <span class="pill">{{.UserName}}</span>
          <span class="pill">MBTI: {{.MBTI}}</span>
          <span class="pill">Shift: {{.Shift}}</span>
        </div>
        <div class="section-title">Key Accomplishments</div>
        <div class="content">{{.Content}}</div>
        {{if .Blockers}}
        <div class="section-title" style="color: #ef4444">Current Blockers</div>
        <div class="content" style="color: #b91c1c; background: #fff5f5;">{{.Blockers}}</div>
        {{end}}
        {{if .Plan}}
        <div class="section-title" style="color: #10b981">Plan for Tomorrow</div>
        <div class="content" style="color: #065f46; background: #f0fdf4;">{{.Plan}}</div>
        {{end}}
        {{if .Links}}
        <div class="section-title">Reference Links</div>
        <div class="content">{{range $i, $l := .Links}}{{if $i}}<br/>{{end}}<a href="{{$l.Href}}" style="color: #3b82f6; text-decoration: none;">{{$l.Label}}</a>{{end}}</div>
        {{end}}
        {{if .FileNames}}
        <div class="section-title">Attachments</div>
        <div class="content">{{.FileNames}}</div>
        {{end}}
      </div>
      {{end}}
      <div style="text-align: center; color: #94a3b8; font-size: 10px; font-weight: 800; margin-top: 50px; text-transform: uppercase; letter-spacing: 2px;">
        Generated by EODly Dashboard &bull; {{.Today}}
      </div>
    </div>
  </body>
</html>
`))

var summaryTmpl = template.Must(template.New("summary").Parse(`<html><body style="font-family: Arial, sans-serif; padding: 40px; line-height: 1.6; max-width: 800px; margin: 0 auto;">
<h1 style="color: #001d3d; text-align: center; border-bottom: 2px solid #001d3d; padding-bottom: 10px;">EODly Team Summary</h1>
<p style="text-align: right; color: #666;"><strong>Export Date:</strong> {{.Today}}</p>
{{range .Cards}}
<div style="margin-bottom: 40px; border: 1px solid #eee; padding: 25px; border-radius: 12px; background: #fafafa;">
<h2 style="color: #001d3d; margin-top: 0;">{{.UserName}} ({{.MBTI}})</h2>
<p><strong>Date:</strong> {{.Date}} | <strong>Shift:</strong> {{.Shift}}</p>
<h3 style="border-left: 4px solid #001d3d; padding-left: 10px;">Achievements</h3><p>{{.Content}}</p>
{{if .Blockers}}<h3 style="border-left: 4px solid #ef4444; padding-left: 10px; color: #ef4444;">Blockers</h3><p>{{.Blockers}}</p>{{end}}
{{if .Plan}}<h3 style="border-left: 4px solid #10b981; padding-left: 10px; color: #10b981;">Plan for Tomorrow</h3><p>{{.Plan}}</p>{{end}}
{{if .Links}}<h3>Links</h3><p>{{range $i, $l := .Links}}{{if $i}}<br/>{{end}}<a href="{{$l.Href}}">{{$l.Label}}</a>{{end}}</p>{{end}}
{{if .FileNames}}<h3>Attachments</h3><p>{{.FileNames}}</p>{{end}}
</div>
{{end}}
</body></html>
`))

type htmlData struct {
	Range  string
	Period string
	Today  string
	Cards  []htmlCard
}

// PrintableHTML renders the report bundle styled for printing.
func PrintableHTML(reports []model.Report, sel Selection) ([]byte, error) {
	if len(reports) == 0 {
		return nil, ErrNoReports
	}
	period := sel.StartDate
	if sel.RangeMode {
		period = fmt.Sprintf("%s to %s", sel.StartDate, sel.EndDate)
	}
	return renderHTML(printableTmpl, htmlData{
		Range:  sel.RangeLabel(),
		Period: period,
		Today:  time.Now().Format("1/2/2006"),
		Cards:  buildCards(reports),
	})
}

// SummaryHTML renders the shareable team summary document.
func SummaryHTML(reports []model.Report) ([]byte, error) {
	if len(reports) == 0 {
		return nil, ErrNoReports
	}
	return renderHTML(summaryTmpl, htmlData{
		Today: time.Now().Format("1/2/2006"),
		Cards: buildCards(reports),
	})
}

func renderHTML(t *template.Template, data htmlData) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.Bytes(), nil
}
