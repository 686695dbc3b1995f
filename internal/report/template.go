package report

import "html/template"

// reportTemplate is the single self-contained report document. Chart.js and
// Bootstrap come from CDNs; the chart payloads are inlined JSON.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>CRM Data EDA Report</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.1.3/dist/css/bootstrap.min.css" rel="stylesheet">
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        body { padding: 20px; font-family: sans-serif; background-color: #f8f9fa; }
        .card { margin-bottom: 20px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
        .chart-container { position: relative; height: 300px; }
    </style>
</head>
<body>
    <div class="container">
        <h1 class="text-center mb-5">CRM Database Exploratory Data Analysis</h1>
{{range .}}
        <div class="card">
            <div class="card-header bg-primary text-white">
                <h2 class="h4 mb-0">{{.Name}}</h2>
            </div>
            <div class="card-body">
                <h5 class="card-title">Sample Data</h5>
                <div class="table-responsive mb-4">
                    <table class="table table-sm table-bordered">
                        <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
                        <tbody>
                        {{range .Samples}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
                        {{end}}</tbody>
                    </table>
                </div>

                <h5 class="card-title">Field Statistics</h5>
                <div class="table-responsive mb-4">
                    <table class="table table-striped table-sm">
                        <thead><tr><th>Field</th><th>Count</th><th>Missing</th><th>Unique</th><th>Min</th><th>Max</th><th>Avg</th></tr></thead>
                        <tbody>
                        {{range .Stats}}<tr>
                            <td>{{.Name}}</td>
                            <td>{{.Count}}</td>
                            <td>{{.Missing}}</td>
                            <td>{{.Unique}}</td>
                            {{if .Numeric}}<td>{{printf "%.2f" .Min}}</td><td>{{printf "%.2f" .Max}}</td><td>{{printf "%.2f" .Mean}}</td>
                            {{else}}<td>-</td><td>-</td><td>-</td>{{end}}
                        </tr>
                        {{end}}</tbody>
                    </table>
                </div>

                {{if .Charts}}<h5 class="card-title">Distributions (Top Fields)</h5>
                <div class="row">
                {{range .Charts}}
                    <div class="col-md-6 mb-4">
                        <h6>{{.Title}}</h6>
                        <div class="chart-container"><canvas id="{{.CanvasID}}"></canvas></div>
                    </div>
                {{end}}
                </div>{{end}}
            </div>
        </div>
{{end}}
    </div>
    <script>
    {{range .}}{{range .Charts}}
    new Chart(document.getElementById("{{.CanvasID}}"), {
        type: "bar",
        data: {{.Payload}},
        options: { responsive: true, maintainAspectRatio: false, plugins: { legend: { display: false } } }
    });
    {{end}}{{end}}
    </script>
</body>
</html>
`))
