package parsing

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Posting is a job posting split into the text that states hard
// requirements and the text that lists nice-to-haves.
type Posting struct {
	Title     string `json:"title,omitempty"`
	Required  string `json:"required"`
	Preferred string `json:"preferred"`
}

var (
	preferredHeadingRe = regexp.MustCompile(`(?i)\b(nice[- ]to[- ]haves?|preferred|bonus(?: points)?|desired|good[- ]to[- ]haves?|pluses|extra credit|would be great)\b`)
	requiredHeadingRe  = regexp.MustCompile(`(?i)\b(requirements?|required|qualifications?|must[- ]haves?|what you(?:'ll| will)? (?:need|bring)|what we(?:'re| are) looking for|you have|skills|experience|responsibilities|about you|who you are)\b`)
	neutralHeadingRe   = regexp.MustCompile(`(?i)\b(about us|about the company|benefits|perks|compensation|salary|equal opportunity|how to apply|our culture|why join)\b`)
	preferredInlineRe  = regexp.MustCompile(`(?i)\b(is a plus|are a plus|a big plus|nice to have|preferred|is a bonus|bonus points|desirable)\b`)
)

type postingSection int

const (
	sectionRequired postingSection = iota
	sectionPreferred
	sectionIgnored
)

// maxHeadingWords bounds how long a line can be and still read as a heading
const maxHeadingWords = 8

// ParsePostingHTML extracts block-level text from an HTML job posting and
// splits it on its headings.
func ParsePostingHTML(htmlContent string) (*Posting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ParseError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	posting := &Posting{Title: collapseSpace(doc.Find("h1").First().Text())}
	if posting.Title == "" {
		posting.Title = collapseSpace(doc.Find("title").First().Text())
	}

	doc.Find("script, style, noscript, nav, footer, header, form").Remove()

	lines := make([]postingLine, 0)
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, dt, dd").Each(func(_ int, s *goquery.Selection) {
		// paragraphs inside list items are already covered by the item
		if !s.Is("li") && s.ParentsFiltered("li").Length() > 0 {
			return
		}
		text := collapseSpace(s.Text())
		if text == "" {
			return
		}
		heading := s.Is("h1, h2, h3, h4, h5, h6, dt")
		if !heading && s.Is("p") {
			strong := collapseSpace(s.Find("strong, b").First().Text())
			heading = strong != "" && strong == text
		}
		lines = append(lines, postingLine{text: text, heading: heading})
	})

	if len(lines) == 0 {
		body := collapseSpace(doc.Find("body").Text())
		if body == "" {
			return nil, &ParseError{Message: "job posting contains no text"}
		}
		lines = append(lines, postingLine{text: body})
	}

	splitPosting(posting, lines)
	return posting, nil
}

// ParsePostingText splits a plain-text job posting on its headings. A
// heading is a short line ending in a colon or one made up of a known
// section title.
func ParsePostingText(content string) (*Posting, error) {
	lines := make([]postingLine, 0)
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		text := collapseSpace(strings.TrimLeft(raw, "-*•#> \t"))
		if text == "" {
			continue
		}
		words := len(strings.Fields(text))
		listItem := strings.TrimLeft(raw, "-*•> \t") != raw
		heading := words <= maxHeadingWords &&
			(strings.HasSuffix(text, ":") || strings.HasPrefix(raw, "#") || (!listItem && words <= 4 && isSectionTitle(text)))
		lines = append(lines, postingLine{text: text, heading: heading})
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Message: "failed to read job posting", Cause: err}
	}
	if len(lines) == 0 {
		return nil, &ParseError{Message: "job posting contains no text"}
	}

	posting := &Posting{}
	if lines[0].heading || len(strings.Fields(lines[0].text)) <= maxHeadingWords {
		posting.Title = strings.TrimSuffix(lines[0].text, ":")
	}
	splitPosting(posting, lines)
	return posting, nil
}

type postingLine struct {
	text    string
	heading bool
}

func splitPosting(posting *Posting, lines []postingLine) {
	var required, preferred strings.Builder
	section := sectionRequired
	for _, line := range lines {
		if line.heading && len(strings.Fields(line.text)) <= maxHeadingWords {
			section = classifyHeading(line.text, section)
			continue
		}
		switch {
		case section == sectionIgnored:
			continue
		case section == sectionPreferred || preferredInlineRe.MatchString(line.text):
			appendLine(&preferred, line.text)
		default:
			appendLine(&required, line.text)
		}
	}
	posting.Required = required.String()
	posting.Preferred = preferred.String()
}

// classifyHeading decides which section the lines under a heading feed.
// Unrecognized headings keep the current section.
func classifyHeading(heading string, current postingSection) postingSection {
	switch {
	case preferredHeadingRe.MatchString(heading):
		return sectionPreferred
	case neutralHeadingRe.MatchString(heading):
		return sectionIgnored
	case requiredHeadingRe.MatchString(heading):
		return sectionRequired
	}
	if current == sectionIgnored {
		return sectionRequired
	}
	return current
}

func isSectionTitle(text string) bool {
	t := strings.TrimSuffix(text, ":")
	return preferredHeadingRe.MatchString(t) || requiredHeadingRe.MatchString(t) || neutralHeadingRe.MatchString(t)
}

func appendLine(b *strings.Builder, line string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(line)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
