package subgen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

const editorConfigContent = `root = true

[*]
charset = utf-8
end_of_line = lf
indent_size = 2
indent_style = space
insert_final_newline = true
trim_trailing_whitespace = true
`

// EditorConfig writes a standard .editorconfig.
func EditorConfig(root string, _ Params) error {
	return writeFile(root, ".editorconfig", []byte(editorConfigContent))
}

const mitLicense = `MIT License

Copyright (c) {{.year}} {{.author}}

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`

// License writes a LICENSE file. Only MIT is generated today.
func License(root string, p Params) error {
	content, err := renderText("license", mitLicense, p)
	if err != nil {
		return err
	}
	return writeFile(root, "LICENSE", content)
}

const readmeTemplate = `# {{.name}}

> {{.description}}
{{if .account}}
[![CI](https://github.com/{{.account}}/{{.name}}/actions/workflows/ci.yml/badge.svg)](https://github.com/{{.account}}/{{.name}}/actions)
{{end}}
## Usage

` + "```sh" + `
npm install
npm start
` + "```" + `
`

// Readme writes README.md. A non-empty content parameter is injected
// verbatim instead of the default template.
func Readme(root string, p Params) error {
	if content := p["content"]; content != "" {
		return writeFile(root, "README.md", []byte(content))
	}
	content, err := renderText("readme", readmeTemplate, p)
	if err != nil {
		return err
	}
	return writeFile(root, "README.md", content)
}

const starterPlugin = `// Starter plugin. Export a function receiving the server instance.
module.exports = function helloPlugin (server) {
  console.log("hello from a plugin")
}
`

// WebAppPlugin creates the plugins directory with a starter plugin.
func WebAppPlugin(root string, _ Params) error {
	return writeFile(root, filepath.Join("plugins", "hello.js"), []byte(starterPlugin))
}

func renderText(name, text string, p Params) ([]byte, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func writeFile(root, rel string, content []byte) error {
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}
