package emit

import (
	"embed"
	"fmt"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func templateSource(s Strategy) (string, error) {
	var name string
	switch s {
	case Flags:
		name = "templates/flags.go.tmpl"
	case ActiveSet:
		name = "templates/activeset.go.tmpl"
	default:
		return "", fmt.Errorf("emit: unknown strategy %v", s)
	}
	b, err := templateFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("emit: load template %s: %w", name, err)
	}
	return string(b), nil
}
