package report

const reportHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} - {{.ReportDate}}</title>
{{- if .AssetsRel}}
  <link rel="icon" type="image/png" sizes="32x32" href="{{.AssetsRel}}/favicon-32x32.png">
  <link rel="icon" type="image/png" sizes="192x192" href="{{.AssetsRel}}/android-chrome-192x192.png">
  <link rel="apple-touch-icon" sizes="180x180" href="{{.AssetsRel}}/android-chrome-192x192.png">
{{- end}}
  <style>
    * { box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      max-width: 950px;
      margin: 0 auto;
      padding: 20px;
      background: #f5f5f5;
      color: #333;
    }
    .header {
      display: flex;
      align-items: center;
      gap: 12px;
      margin-bottom: 10px;
    }
    .logo {
      width: 40px;
      height: 40px;
      border-radius: 10px;
      background: #fff;
      box-shadow: 0 1px 3px rgba(0,0,0,0.1);
    }
    h1 {
      color: #1a365d;
      border-bottom: 3px solid #2563eb;
      padding-bottom: 10px;
      margin: 0;
    }
    .summary {
      background: #fff;
      padding: 15px 20px;
      border-radius: 8px;
      margin-bottom: 20px;
      box-shadow: 0 1px 3px rgba(0,0,0,0.1);
    }
    .summary strong { color: #2563eb; }
    .priority-section { margin-bottom: 30px; }
    .priority-section h2 {
      color: #dc2626;
      display: flex;
      align-items: center;
      gap: 8px;
    }
    .priority-badge {
      background: #dc2626;
      color: white;
      padding: 2px 8px;
      border-radius: 999px;
      font-size: 12px;
      font-weight: 600;
    }
    .other-section { margin-bottom: 30px; }
    .other-section h2 {
      color: #6b7280;
      display: flex;
      align-items: center;
      gap: 8px;
    }
    .other-badge {
      background: #6b7280;
      color: white;
      padding: 2px 8px;
      border-radius: 999px;
      font-size: 12px;
      font-weight: 600;
    }
    .filing {
      background: #fff;
      margin-bottom: 16px;
      border-radius: 8px;
      overflow: hidden;
      box-shadow: 0 1px 3px rgba(0,0,0,0.08);
      border-left: 4px solid #2563eb;
    }
    .filing.priority { border-left-color: #dc2626; }
    .filing-header {
      padding: 14px 16px;
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      gap: 12px;
      border-bottom: 1px solid #e5e7eb;
    }
    .company-info h3 {
      margin: 0 0 4px 0;
      color: #1a365d;
      font-size: 18px;
    }
    .ticker {
      display: inline-block;
      background: #2563eb;
      color: white;
      padding: 2px 8px;
      border-radius: 6px;
      font-weight: 700;
      font-size: 13px;
    }
    .cik {
      color: #6b7280;
      font-size: 12px;
    }
    .form-type {
      background: #e5e7eb;
      padding: 4px 10px;
      border-radius: 999px;
      font-size: 12px;
      font-weight: 700;
      white-space: nowrap;
    }
    .items { padding: 14px 16px; }
    .item {
      margin-bottom: 10px;
      padding: 10px 12px;
      background: #f9fafb;
      border-radius: 8px;
      border-left: 3px solid #e5e7eb;
    }
    .item.priority {
      border-left-color: #dc2626;
      background: #fef2f2;
    }
    .item-header {
      font-weight: 700;
      color: #1f2937;
      margin-bottom: 6px;
    }
    .item-context {
      color: #374151;
      font-size: 14px;
      line-height: 1.4;
    }
    .analysis {
      padding: 0 16px 14px 16px;
    }
    .analysis h4 {
      margin: 0 0 6px 0;
      color: #1f2937;
      font-size: 14px;
    }
    .analysis ul {
      margin: 0;
      padding-left: 20px;
      color: #374151;
      font-size: 14px;
      line-height: 1.4;
    }
    .filing-link {
      display: block;
      padding: 12px 16px;
      background: #f3f4f6;
      text-decoration: none;
      color: #2563eb;
      font-weight: 700;
      border-top: 1px solid #e5e7eb;
    }
    .filing-link:hover { background: #e5e7eb; }
    .no-items { color: #6b7280; }
    .no-filings {
      text-align: center;
      color: #6b7280;
      padding: 30px;
    }
  </style>
</head>
<body>
  <div class="header">
{{- if .LogoSrc}}
    <img class="logo" src="{{.LogoSrc}}" alt="logo">
{{- end}}
    <h1>{{.Title}}</h1>
  </div>
  <div class="summary">
    <p><strong>Date:</strong> {{.ReportDate}}</p>
    <p><strong>Total Filings:</strong> {{.TotalFilings}}</p>
    <p><strong>Forms (present):</strong> {{if .FormsPresent}}{{.FormsPresent}}{{else}}&mdash;{{end}}</p>
    <p><strong>Priority 8-K Filings:</strong> {{len .PriorityEntries}} (8-K Items: {{.PriorityItemList}})</p>
  </div>
{{- if .PriorityEntries}}
  <div class="priority-section">
    <h2>Priority 8-K Filings <span class="priority-badge">{{len .PriorityEntries}}</span></h2>
{{- range .PriorityEntries}}
{{template "filing" .}}
{{- end}}
  </div>
{{- end}}
{{- if .OtherEntries}}
  <div class="other-section">
    <h2>Other Filings <span class="other-badge">{{len .OtherEntries}}</span></h2>
{{- range .OtherEntries}}
{{template "filing" .}}
{{- end}}
  </div>
{{- else if not .PriorityEntries}}
  <div class="no-filings">No filings found for your criteria.</div>
{{- end}}
</body>
</html>
{{define "filing"}}
    <div class="filing{{if .Filing.HasPriorityItems}} priority{{end}}">
      <div class="filing-header">
        <div class="company-info">
          <h3><span class="ticker">{{.Filing.Ticker}}</span> {{.Filing.CompanyName}}</h3>
          <div class="cik">CIK: {{.Filing.CIK}} &middot; Filed: {{.Filing.DateFiled}}</div>
        </div>
        <span class="form-type">{{.Filing.FormType}}</span>
      </div>
      <div class="items">
{{- if .Filing.Items}}
{{- range .Filing.Items}}
        <div class="item{{if .IsPriority}} priority{{end}}">
          <div class="item-header">Item {{.Item}}: {{.Description}}</div>
          <div class="item-context">{{.Context}}</div>
        </div>
{{- end}}
{{- else}}
        <p class="no-items">Could not extract item details</p>
{{- end}}
      </div>
{{- if .Analysis}}
      <div class="analysis">
        <h4>AI Summary</h4>
        <ul>
{{- range .Analysis.Summary}}
          <li>{{.}}</li>
{{- end}}
{{- range .Analysis.NotableDisclosures}}
          <li><strong>[{{.Item}}]</strong> {{.Details}}</li>
{{- end}}
        </ul>
      </div>
{{- end}}
      <a class="filing-link" href="{{.Filing.URL}}" target="_blank" rel="noopener">View Full Filing &rarr;</a>
      <a class="filing-link" href="{{.IndexURL}}" target="_blank" rel="noopener">All documents</a>
    </div>
{{end}}`
