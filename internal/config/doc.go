// Package config loads the optional workspace configuration file.
//
// The file lives at the workspace root under one of the names
// gitignore-sync.jsonc, gitignore-sync.json, gitignore-sync.yaml, or
// gitignore-sync.yml (first match wins). JSONC support uses
// github.com/tidwall/jsonc to strip comments before handing the bytes
// to encoding/json; YAML files are parsed with gopkg.in/yaml.v3.
//
// An absent file is not an error — every field has a default, and the
// zero-value Config answers all path queries.
package config
