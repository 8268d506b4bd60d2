package web

// pageTemplates contém o layout e um bloco por view.
const pageTemplates = `
{{define "page"}}<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>CarbonScope · {{.Title}}</title>
  <style>
    :root {
      --bg: #23272b;
      --ink: #f2f2f2;
      --muted: #8a8f98;
      --card: #2c3136;
      --accent: #ffeb3b;
      --border: #3a3f45;
      --danger: #e53935;
    }
    * { box-sizing: border-box; }
    body { margin: 0; font-family: "Segoe UI", "Helvetica Neue", Arial, sans-serif; color: var(--ink); background: var(--bg); }
    header { display: flex; gap: 16px; align-items: center; padding: 16px 24px; border-bottom: 1px solid var(--border); position: sticky; top: 0; background: var(--bg); z-index: 10; }
    header h1 { margin: 0; font-size: 20px; color: var(--accent); }
    nav a { color: var(--muted); text-decoration: none; margin-right: 12px; }
    nav a.active { color: var(--accent); font-weight: 600; }
    main { padding: 24px; max-width: 1100px; margin: 0 auto; }
    .landing { height: 100vh; display: flex; flex-direction: column; justify-content: center; align-items: center; }
    .landing h2 { font-size: 48px; letter-spacing: 8px; color: var(--accent); margin: 0; }
    .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 16px; margin-bottom: 16px; }
    .card { background: var(--card); border: 1px solid var(--border); border-radius: 10px; padding: 16px; margin-bottom: 16px; }
    .card h3 { margin: 0 0 12px; color: var(--accent); font-size: 16px; }
    .value { font-size: 32px; font-weight: 700; }
    .track { background: var(--border); border-radius: 6px; height: 10px; overflow: hidden; margin-top: 8px; }
    .fill { background: var(--accent); height: 100%; }
    .failed { color: var(--danger); }
    .failed a { color: var(--danger); }
    .segment { display: inline-block; height: 12px; border-radius: 3px; vertical-align: middle; margin-right: 8px; }
    .category { display: block; color: var(--ink); text-decoration: none; padding: 4px 0; }
    .category.active { font-weight: 700; }
    .bar-row { display: grid; grid-template-columns: 48px 1fr 64px; gap: 8px; align-items: center; margin: 4px 0; }
    .modal { position: fixed; inset: 0; background: rgba(0,0,0,0.6); display: flex; align-items: center; justify-content: center; z-index: 20; }
    .modal .card { max-width: 520px; border-color: var(--accent); }
    .muted { color: var(--muted); }
  </style>
</head>
<body>
  <header>
    <h1>CarbonScope</h1>
    <nav>{{range .Nav}}<a href="{{.Path}}"{{if .Active}} class="active"{{end}}>{{.Text}}</a>{{end}}</nav>
  </header>
  {{if eq .View "dashboard"}}{{template "dashboard" .}}
  {{else if eq .View "gamification-info"}}{{template "gamification" .}}
  {{else if eq .View "tips"}}{{template "tips" .}}
  {{else if eq .View "reports"}}{{template "reports" .}}
  {{else if eq .View "about"}}{{template "about" .}}
  {{else}}{{template "notfound" .}}{{end}}
</body>
</html>{{end}}

{{define "retry"}}<span class="failed">(<a href="/">{{retryHint}}</a>)</span>{{end}}

{{define "dashboard"}}
  <section class="landing" id="landing">
    <h2>C A R B O N S C O P E</h2>
    <p>See the invisible footprint of your digital life</p>
    <p class="muted">scroll down</p>
  </section>
  <main>
  {{with .Dashboard}}
    <div class="grid">
      <div class="card">
        <h3>Total CO2 Today</h3>
        <div class="value">{{.Total.Value}} {{if .Total.Failed}}{{template "retry"}}{{end}}</div>
        <div class="track"><div class="fill" style="{{width .TotalPercent}}"></div></div>
      </div>
      <div class="card">
        <h3>Daily Breakdown</h3>
        {{if .Daily.Lines}}{{range .Daily.Lines}}<div>{{.}}</div>{{end}}
        {{else}}<div class="value">{{.Daily.Value}} {{if .Daily.Failed}}{{template "retry"}}{{end}}</div>{{end}}
      </div>
      <div class="card">
        <h3>Gamification</h3>
        <a class="category" href="/?score=1">Score: <strong>{{.Score.Value}}</strong></a>
        {{if .Score.Failed}}{{template "retry"}}{{end}}
        <div>Level: <strong{{if .LevelColor}} style="color: {{.LevelColor}}"{{end}}>{{.Level}}</strong></div>
        {{if .LevelDescription}}<p class="muted">{{.LevelDescription}}</p>{{end}}
        <div class="track"><div class="fill" style="{{width .ScorePercent}}"></div></div>
      </div>
    </div>
    <div class="card">
      <h3>Category Emissions (Quantity)</h3>
      {{if .Categories}}{{range .Categories}}
        <a class="category{{if .Active}} active{{end}}" href="/?category={{.Index}}" title="{{.Name}}">
          <span class="segment" style="{{background .Color}}; width: {{.Radius}}px"></span>{{.Name}} {{.Value}}
        </a>
      {{end}}{{else}}<div class="value">--{{if .CategoriesFailed}} {{template "retry"}}{{end}}</div>{{end}}
    </div>
    <div class="card">
      <h3>Total Carbon Emissions (Weekly)</h3>
      {{if .Weekly}}{{range .Weekly}}
        <div class="bar-row"><span>{{.Day}}</span><div class="track"><div class="fill" style="{{width .Percent}}"></div></div><span>{{.Value}}</span></div>
      {{end}}{{else}}<div class="value">--{{if .WeeklyFailed}} {{template "retry"}}{{end}}</div>{{end}}
    </div>
    {{with .Modal}}
    <div class="modal">
      <div class="card">
        <h3>{{.Title}}</h3>
        <p>{{.Body}}</p>
        {{if .Value}}<p><strong>Value: {{.Value}}</strong></p>{{end}}
        <a href="/">Close</a>
      </div>
    </div>
    {{end}}
  {{end}}
  </main>
  <script>
    (function () {
      var landing = document.getElementById("landing");
      function update() {
        var distance = window.innerHeight * {{.FadeRatio}};
        var opacity = distance > 0 ? Math.max(0, Math.min(1, 1 - window.scrollY / distance)) : (window.scrollY <= 0 ? 1 : 0);
        landing.style.opacity = opacity;
        landing.style.pointerEvents = opacity > 0 ? "auto" : "none";
      }
      window.addEventListener("scroll", update);
      window.addEventListener("resize", update);
      update();
    })();
  </script>
{{end}}

{{define "gamification"}}
  <main>
    <div class="card">
      <h3>Gamification Levels</h3>
      {{range .Levels}}<p><strong style="color: {{.Color}}">{{.Name}}</strong><br />{{.Description}}</p>{{end}}
    </div>
  </main>
{{end}}

{{define "tips"}}
  <main>
    <div class="card">
      <h3>Tips to Reduce Your Digital Carbon Footprint</h3>
      <ol>{{range .Tips}}<li>{{.}}</li>{{end}}</ol>
    </div>
  </main>
{{end}}

{{define "reports"}}
  <main>
    <div class="card">
      <h3>Reports</h3>
      <p>Reports Coming Soon</p>
      <p class="muted">Download a snapshot: {{range .Formats}}<a href="/reports/export/{{.}}">{{.}}</a> {{end}}</p>
    </div>
  </main>
{{end}}

{{define "about"}}
  <main>
    {{range .About}}<div class="card"><h3>{{.Title}}</h3><p>{{.Body}}</p></div>{{end}}
  </main>
{{end}}

{{define "notfound"}}
  <main>
    <div class="card">
      <h3>404 Not Found</h3>
      <p>No view at {{.Path}}.</p>
      <p><a href="/">Back to the dashboard</a></p>
    </div>
  </main>
{{end}}
`
