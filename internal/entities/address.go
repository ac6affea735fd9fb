package entities

import "strings"

type Address struct {
	Street   string
	Commune  string
	District string
	City     string
}

// String склеивает непустые части через ", ".
func (a *Address) String() string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.Commune, a.District, a.City} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func (a *Address) IsEmpty() bool {
	return a.String() == ""
}
