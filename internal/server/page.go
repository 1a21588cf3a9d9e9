package server

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Pythva - Python to Java Style Converter</title>
    <style>
        body { font-family: sans-serif; max-width: 960px; margin: 2em auto; padding: 0 1em; }
        textarea, pre { width: 100%; min-height: 240px; font-family: monospace; font-size: 14px; box-sizing: border-box; }
        pre { background: #f5f5f5; border: 1px solid #ddd; padding: 0.5em; overflow: auto; }
        .row { display: flex; gap: 1em; }
        .col { flex: 1; }
        .status { margin: 0.5em 0; }
        .status.error { color: #b00020; }
        button { padding: 0.5em 1.5em; }
    </style>
</head>
<body>
    <h1>Pythva</h1>
    <p>Paste Python code on the left, get Java-styled output on the right.</p>
    <div class="row">
        <div class="col">
            <textarea id="code" placeholder="class HelloWorld: ..."></textarea>
        </div>
        <div class="col">
            <pre id="output"></pre>
        </div>
    </div>
    <label><input type="checkbox" id="enhanced"> enhanced mapping</label>
    <button onclick="convert()">Convert</button>
    <button onclick="loadExamples()">Examples</button>
    <div class="status" id="status"></div>
    <div id="examples"></div>
    <script>
        async function convert() {
            const code = document.getElementById('code').value;
            const enhanced = document.getElementById('enhanced').checked;
            const status = document.getElementById('status');
            try {
                const resp = await fetch('/convert', {
                    method: 'POST',
                    headers: {'Content-Type': 'application/json'},
                    body: JSON.stringify({code: code, enhanced: enhanced})
                });
                const result = await resp.json();
                if (result.success) {
                    document.getElementById('output').textContent = result.converted_code;
                    status.className = 'status';
                    status.textContent = 'done (' + result.errors + ' errors, ' + result.warnings + ' warnings)';
                } else {
                    status.className = 'status error';
                    status.textContent = result.error;
                }
            } catch (e) {
                status.className = 'status error';
                status.textContent = 'request failed';
            }
        }
        async function loadExamples() {
            const resp = await fetch('/examples');
            const examples = await resp.json();
            const container = document.getElementById('examples');
            container.innerHTML = '';
            for (const [name, code] of Object.entries(examples)) {
                const btn = document.createElement('button');
                btn.textContent = name;
                btn.onclick = () => { document.getElementById('code').value = code; };
                container.appendChild(btn);
            }
        }
    </script>
</body>
</html>
`
