package gen

import "text/template"

const entityTmplText = `/* generated by teslo, do not edit */
{{- range .Imports}}
import { {{.Symbol}} } from '{{.Path}}';
{{- end}}

export interface {{.Name}} {
{{- range .Props}}
  {{.Name}}{{if .Optional}}?{{end}}: {{.Type}};{{if .Comment}} // {{.Comment}}{{end}}
{{- end}}
}
`

const enumTmplText = `/* generated by teslo, do not edit */
export enum {{.Name}} {
{{- range .Values}}
  {{.}} = '{{.}}',
{{- end}}
}
`

var (
	entityTmpl = template.Must(template.New("entity").Parse(entityTmplText))
	enumTmpl   = template.Must(template.New("enum").Parse(enumTmplText))
)
