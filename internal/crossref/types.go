package crossref

// Work is one bibliographic record from the CrossRef API. The loosely
// typed registry payload is decoded into this type at the client
// boundary and nothing downstream touches the raw JSON.
type Work struct {
	DOI             string       `json:"DOI"`
	Title           []string     `json:"title"`
	Author          []Author     `json:"author"`
	PublishedPrint  *PartialDate `json:"published-print"`
	PublishedOnline *PartialDate `json:"published-online"`
	Created         *PartialDate `json:"created"`
	ContainerTitle  []string     `json:"container-title"`
	Publisher       string       `json:"publisher"`
}

// Author is a CrossRef author entry: either family/given parts or a
// single display name (organizations, historical records).
type Author struct {
	Family string `json:"family"`
	Given  string `json:"given"`
	Name   string `json:"name"`
}

// PartialDate is CrossRef's date-parts encoding: [[year, month, day]]
// with month and day optional.
type PartialDate struct {
	DateParts [][]int `json:"date-parts"`
}

// Year returns the year component, or 0 if absent.
func (d *PartialDate) Year() int {
	if d == nil || len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return 0
	}
	return d.DateParts[0][0]
}

// PrimaryTitle returns the first title, or "" if the record has none.
func (w *Work) PrimaryTitle() string {
	if len(w.Title) == 0 {
		return ""
	}
	return w.Title[0]
}

// Year returns the publication year, preferring print over online over
// record-creation date. Returns 0 if no date field has a year.
func (w *Work) Year() int {
	for _, d := range []*PartialDate{w.PublishedPrint, w.PublishedOnline, w.Created} {
		if y := d.Year(); y != 0 {
			return y
		}
	}
	return 0
}

// Journal returns the first container title, falling back to the
// publisher name, or "" when neither is present.
func (w *Work) Journal() string {
	if len(w.ContainerTitle) > 0 {
		return w.ContainerTitle[0]
	}
	return w.Publisher
}

// AuthorNames returns up to max author display names, preferring
// "Given Family" and falling back to the bare name field.
func (w *Work) AuthorNames(max int) []string {
	var names []string
	for _, a := range w.Author {
		if len(names) >= max {
			break
		}
		switch {
		case a.Family != "" && a.Given != "":
			names = append(names, a.Given+" "+a.Family)
		case a.Family != "":
			names = append(names, a.Family)
		case a.Name != "":
			names = append(names, a.Name)
		}
	}
	return names
}

// workEnvelope is the single-work response wrapper.
type workEnvelope struct {
	Message Work `json:"message"`
}

// worksListEnvelope is the query response wrapper.
type worksListEnvelope struct {
	Message struct {
		Items []Work `json:"items"`
	} `json:"message"`
}
