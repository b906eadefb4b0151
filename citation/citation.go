package citation

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// BaseURL is the ELI lookup endpoint filtering documents by date and type.
	BaseURL = "https://id.belgium.be/_query/eli/filter-by-docdate"

	// MinTextLength is the shortest text, in characters, worth matching.
	MinTextLength = 11

	// MinYear is the earliest accepted document year.
	MinYear = 1800

	isoDate = "2006-01-02"
)

// gap is any run of whitespace between the shorthand and the day, Unicode
// spaces included: citations copied from HTML often use a non-breaking space.
const gap = `[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]*`

// pattern is applied to lower-cased text: a shorthand token, a day, an
// optional / or - separator, a month, another optional separator and a
// four-digit year in 18xx, 19xx or 20xx.
var pattern = regexp.MustCompile(`(` + tokenAlternation() + `)` + gap + `([0-3]?\d)[/-]?((?:0|1)?\d)[/-]?((?:18|19|20)\d\d)`)

// Match holds the substrings captured from a citation. Values are only
// checked by the pattern, not against the calendar.
type Match struct {
	Token string
	Day   string
	Month string
	Year  string
}

// Resolved is a citation turned into lookup parameters.
type Resolved struct {
	Date time.Time
	Type DocType
}

// ISODate returns the date as YYYY-MM-DD.
func (r Resolved) ISODate() string {
	return r.Date.Format(isoDate)
}

// URL returns the lookup URL for r.
func (r Resolved) URL() string {
	query := url.Values{}
	query.Set("date", r.ISODate())
	query.Set("type", r.Type.Code())
	return BaseURL + "?" + query.Encode()
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithStrictCalendar rejects day/month combinations that do not exist, such
// as 31/04, instead of rolling them over into the next month.
func WithStrictCalendar() Option {
	return func(r *Resolver) {
		r.strict = true
	}
}

// Resolver recognises shorthand Belgian legal citations. The zero value is
// ready to use and is safe for concurrent use.
type Resolver struct {
	strict bool
}

// NewResolver creates a resolver with the given options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MatchText finds the first citation in text.
func (r *Resolver) MatchText(text string) (Match, bool) {
	if utf8.RuneCountInString(text) < MinTextLength {
		return Match{}, false
	}
	m := pattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return Match{}, false
	}
	return Match{Token: m[1], Day: m[2], Month: m[3], Year: m[4]}, true
}

// Resolve turns a match into a date and document type. Dates before 1800
// and unknown tokens are rejected.
func (r *Resolver) Resolve(m Match) (Resolved, bool) {
	token, ok := ParseToken(m.Token)
	if !ok {
		return Resolved{}, false
	}
	docType := token.DocType()
	if docType == DocTypeUnknown {
		return Resolved{}, false
	}
	year, err := strconv.Atoi(m.Year)
	if err != nil {
		return Resolved{}, false
	}
	month, err := strconv.Atoi(m.Month)
	if err != nil {
		return Resolved{}, false
	}
	day, err := strconv.Atoi(m.Day)
	if err != nil {
		return Resolved{}, false
	}
	// time.Date normalizes out-of-range days and months into the next or
	// previous month.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() < MinYear {
		return Resolved{}, false
	}
	if r.strict && (date.Day() != day || int(date.Month()) != month) {
		return Resolved{}, false
	}
	return Resolved{Date: date, Type: docType}, true
}

// Suggest matches and resolves text in one step.
func (r *Resolver) Suggest(text string) (Resolved, bool) {
	m, ok := r.MatchText(text)
	if !ok {
		return Resolved{}, false
	}
	return r.Resolve(m)
}

// BuildURL returns the lookup URL for the first citation in text.
func (r *Resolver) BuildURL(text string) (string, bool) {
	resolved, ok := r.Suggest(text)
	if !ok {
		return "", false
	}
	return resolved.URL(), true
}

var defaultResolver = &Resolver{}

// MatchText finds the first citation in text using the default resolver.
func MatchText(text string) (Match, bool) {
	return defaultResolver.MatchText(text)
}

// Resolve resolves a match using the default resolver.
func Resolve(m Match) (Resolved, bool) {
	return defaultResolver.Resolve(m)
}

// BuildURL returns the lookup URL for the first citation in text using the
// default resolver.
func BuildURL(text string) (string, bool) {
	return defaultResolver.BuildURL(text)
}
