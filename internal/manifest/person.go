package manifest

import "regexp"

// Person is an author identity with optional contact fields.
type Person struct {
	Name  string
	Email string
	URL   string
}

// personRe matches the free-text contact form "Name <email> (url)".
// Every segment is optional.
var personRe = regexp.MustCompile(`^\s*([^<(]*?)\s*(?:<([^>]*)>)?\s*(?:\(([^)]*)\))?\s*$`)

// ParsePerson parses a free-text author string into its subfields.
// Returns false when nothing usable could be extracted; the caller falls
// back to prompting instead of failing the run.
func ParsePerson(s string) (Person, bool) {
	m := personRe.FindStringSubmatch(s)
	if m == nil {
		return Person{}, false
	}
	p := Person{Name: m[1], Email: m[2], URL: m[3]}
	if p.Name == "" && p.Email == "" && p.URL == "" {
		return Person{}, false
	}
	return p, true
}

// String renders the person back into the "Name <email> (url)" form.
func (p Person) String() string {
	out := p.Name
	if p.Email != "" {
		if out != "" {
			out += " "
		}
		out += "<" + p.Email + ">"
	}
	if p.URL != "" {
		if out != "" {
			out += " "
		}
		out += "(" + p.URL + ")"
	}
	return out
}
