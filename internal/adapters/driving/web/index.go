package web

// indexHTML is the single-page interface. It talks to the JSON routes
// and keeps no state beyond the session cookie.
const indexHTML = `<!DOCTYPE html>
<html lang="lt">
<head>
<meta charset="utf-8">
<title>Stenograma</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
fieldset { margin-bottom: 1.5rem; border: 1px solid #ccc; }
label { display: block; margin: .5rem 0 .2rem; }
input[type=text], select { width: 100%; padding: .3rem; }
button { margin-top: .6rem; padding: .4rem 1rem; }
pre { background: #f4f4f4; padding: 1rem; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>Stenograma</h1>

<fieldset>
<legend>Load a transcript</legend>
<form id="upload-form">
<label>Transcript file (.txt or .docx)</label>
<input type="file" name="file" required>
<label>Date override (optional, e.g. 2024-05-16)</label>
<input type="text" name="date">
<button type="submit">Upload</button>
</form>
<form id="youtube-form">
<label>Or a YouTube URL</label>
<input type="text" name="url" placeholder="https://www.youtube.com/watch?v=...">
<button type="submit">Transcribe</button>
</form>
</fieldset>

<fieldset>
<legend>Ask</legend>
<form id="ask-form">
<label>Speaker</label>
<select name="speaker" id="speaker-select"></select>
<label>Date (optional)</label>
<select name="date" id="date-select"><option value=""></option></select>
<label>Question</label>
<input type="text" name="query" required>
<button type="submit">Ask</button>
</form>
</fieldset>

<pre id="output"></pre>

<script>
const out = document.getElementById('output');

async function refreshFilters() {
  const speakers = await (await fetch('/speakers')).json();
  const sel = document.getElementById('speaker-select');
  sel.innerHTML = '';
  for (const s of speakers.speakers) {
    sel.appendChild(new Option(s, s));
  }
  const dates = await (await fetch('/dates')).json();
  const dsel = document.getElementById('date-select');
  dsel.innerHTML = '<option value=""></option>';
  for (const d of dates.dates) {
    dsel.appendChild(new Option(d, d));
  }
  if (dates.undated) {
    dsel.appendChild(new Option('undated', 'undated'));
  }
}

document.getElementById('upload-form').addEventListener('submit', async e => {
  e.preventDefault();
  const resp = await fetch('/upload', { method: 'POST', body: new FormData(e.target) });
  const body = await resp.json();
  out.textContent = resp.ok ? 'Loaded ' + body.added + ' utterances.' : body.error;
  refreshFilters();
});

document.getElementById('youtube-form').addEventListener('submit', async e => {
  e.preventDefault();
  out.textContent = 'Transcribing, this can take a while...';
  const url = e.target.elements.url.value;
  const resp = await fetch('/youtube', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify({ url })
  });
  const body = await resp.json();
  out.textContent = resp.ok ? 'Loaded ' + body.added + ' utterances from "' + body.title + '".' : body.error;
  refreshFilters();
});

document.getElementById('ask-form').addEventListener('submit', async e => {
  e.preventDefault();
  const f = e.target.elements;
  out.textContent = 'Thinking...';
  const resp = await fetch('/ask', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify({ speaker: f.speaker.value, date: f.date.value, query: f.query.value })
  });
  const body = await resp.json();
  if (!resp.ok) { out.textContent = body.error; return; }
  out.textContent = body.found ? body.answer : 'No context found for that speaker.';
});

refreshFilters();
</script>
</body>
</html>
`
