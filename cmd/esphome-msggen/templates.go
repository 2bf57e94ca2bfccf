package main

import (
	"strings"
	"text/template"
)

type templateData struct {
	Package  string
	Messages []RawMessage
	Entities []Entity
}

var genTmpl = template.Must(template.New("gen").Parse(`// Code generated by esphome-msggen from the message schema. DO NOT EDIT.

package {{.Package}}

// Message types.
const (
{{- range .Messages}}
	Msg{{.Name}} MessageType = {{.ID}}
{{- end}}
)

var messageTypeNames = map[MessageType]string{
{{- range .Messages}}
	Msg{{.Name}}: "{{.Name}}",
{{- end}}
}

// Entity types.
const (
{{- range $i, $e := .Entities}}
	Entity{{$e.Name}}{{if eq $i 0}} EntityType = iota{{end}}
{{- end}}
)

var entityTypeNames = [...]string{
{{- range .Entities}}
	Entity{{.Name}}: "{{.Name}}",
{{- end}}
}

var listResponseEntities = map[MessageType]EntityType{
{{- range .Entities}}
	Msg{{.ListResponse}}: Entity{{.Name}},
{{- end}}
}

var stateResponseEntities = map[MessageType]EntityType{
{{- range .Entities}}{{if .State}}
	Msg{{.State}}: Entity{{.Name}},
{{- end}}{{end}}
}

var commandRequests = map[EntityType]MessageType{
{{- range .Entities}}{{if .Command}}
	Entity{{.Name}}: Msg{{.Command}},
{{- end}}{{end}}
}
`))

// Generate renders the Go source for a schema.
func Generate(s *Schema, pkg string) (string, error) {
	var b strings.Builder
	err := genTmpl.Execute(&b, templateData{
		Package:  pkg,
		Messages: s.Messages,
		Entities: s.Entities(),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
