package subgen

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type ciWorkflow struct {
	Name string            `yaml:"name"`
	On   map[string]ciPush `yaml:"on"`
	Jobs map[string]ciJob  `yaml:"jobs"`
}

type ciPush struct {
	Branches []string `yaml:"branches"`
}

type ciJob struct {
	RunsOn string   `yaml:"runs-on"`
	Steps  []ciStep `yaml:"steps"`
}

type ciStep struct {
	Name string            `yaml:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	Run  string            `yaml:"run,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
}

// CI writes a GitHub Actions workflow running install, lint and tests.
func CI(root string, p Params) error {
	workflow := ciWorkflow{
		Name: p["name"],
		On: map[string]ciPush{
			"push":         {Branches: []string{"main"}},
			"pull_request": {Branches: []string{"main"}},
		},
		Jobs: map[string]ciJob{
			"test": {
				RunsOn: "ubuntu-latest",
				Steps: []ciStep{
					{Uses: "actions/checkout@v4"},
					{
						Uses: "actions/setup-node@v4",
						With: map[string]string{"node-version": "22"},
					},
					{Name: "Install", Run: "npm ci"},
					{Name: "Lint", Run: "npx eslint ."},
					{Name: "Test", Run: "npm test"},
				},
			},
		},
	}

	content, err := yaml.Marshal(workflow)
	if err != nil {
		return fmt.Errorf("marshaling workflow: %w", err)
	}
	return writeFile(root, filepath.Join(".github", "workflows", "ci.yml"), content)
}
