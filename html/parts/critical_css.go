package parts

import (
	_ "embed"
	"html/template"
	"log"
	"os"
)

//go:embed warehouse.css
var defaultCSS string

// CSSOverride is read instead of the embedded stylesheet when it exists.
const CSSOverride = "assets/warehouse.css"

// GetCriticalCSS returns the inline stylesheet for every page.
func GetCriticalCSS() template.CSS {
	css, err := os.ReadFile(CSSOverride)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println("Critical CSS error:", err)
		}
		return template.CSS(defaultCSS)
	}
	return template.CSS(css)
}
