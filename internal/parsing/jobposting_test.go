package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePostingHTML = `<html>
<head><title>Careers</title><script>var tracking = "kafka";</script></head>
<body>
<nav><a href="/">Home</a></nav>
<h1>Senior Backend Engineer</h1>
<h2>Requirements</h2>
<ul>
  <li>5+ years of Go in production</li>
  <li>Experience running Kubernetes clusters</li>
</ul>
<h2>Nice to have</h2>
<ul>
  <li>Terraform</li>
  <li><p>GraphQL APIs</p></li>
</ul>
<h2>Benefits</h2>
<p>Free snacks and Python workshops</p>
<p>Knowledge of Rust is a plus</p>
</body>
</html>`

func TestParsePostingHTML_SplitsSections(t *testing.T) {
	posting, err := ParsePostingHTML(samplePostingHTML)

	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", posting.Title)
	assert.Contains(t, posting.Required, "5+ years of Go in production")
	assert.Contains(t, posting.Required, "Kubernetes")
	assert.Contains(t, posting.Preferred, "Terraform")
	assert.Contains(t, posting.Preferred, "GraphQL APIs")
	assert.NotContains(t, posting.Required, "Terraform")
	assert.NotContains(t, posting.Required, "kafka", "script content must be dropped")
	assert.NotContains(t, posting.Required, "Python", "benefits section is ignored")
}

func TestParsePostingHTML_NestedParagraphCountedOnce(t *testing.T) {
	posting, err := ParsePostingHTML(samplePostingHTML)

	require.NoError(t, err)
	assert.Equal(t, 1, countOccurrences(posting.Preferred, "GraphQL APIs"))
}

func TestParsePostingHTML_BoldParagraphIsHeading(t *testing.T) {
	html := `<body><p><strong>Preferred qualifications</strong></p><p>Snowflake</p></body>`

	posting, err := ParsePostingHTML(html)

	require.NoError(t, err)
	assert.Equal(t, "Snowflake", posting.Preferred)
	assert.Empty(t, posting.Required)
}

func TestParsePostingHTML_Empty(t *testing.T) {
	_, err := ParsePostingHTML("<html><body>   </body></html>")

	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParsePostingText_SplitsSections(t *testing.T) {
	text := `Data Scientist

What you'll need:
- Python and SQL
- Statistics background

Nice to have:
- Spark
- Tableau

About us:
- We use Kubernetes internally
`

	posting, err := ParsePostingText(text)

	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", posting.Title)
	assert.Contains(t, posting.Required, "Python and SQL")
	assert.Contains(t, posting.Required, "Statistics background")
	assert.Contains(t, posting.Preferred, "Spark")
	assert.Contains(t, posting.Preferred, "Tableau")
	assert.NotContains(t, posting.Required, "Kubernetes")
	assert.NotContains(t, posting.Preferred, "Kubernetes")
}

func TestParsePostingText_BulletIsNotHeading(t *testing.T) {
	text := "Requirements:\n- Skills in SQL\nPreferred:\n- Looker"

	posting, err := ParsePostingText(text)

	require.NoError(t, err)
	assert.Equal(t, "Skills in SQL", posting.Required)
	assert.Equal(t, "Looker", posting.Preferred)
}

func TestParsePostingText_InlinePlusGoesToPreferred(t *testing.T) {
	posting, err := ParsePostingText("Requirements:\n- Java\n- Scala is a plus")

	require.NoError(t, err)
	assert.Equal(t, "Java", posting.Required)
	assert.Equal(t, "Scala is a plus", posting.Preferred)
}

func TestParsePostingText_Empty(t *testing.T) {
	_, err := ParsePostingText("\n  \n")
	assert.Error(t, err)
}

func countOccurrences(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}
