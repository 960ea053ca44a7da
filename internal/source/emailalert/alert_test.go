package emailalert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAlert = `<html><body>
<table>
  <tr><td>
    <a href="https://www.linkedin.com/comm/jobs/view/12345/?trk=alert"><img src="logo.png"></a>
    <a href="https://www.linkedin.com/comm/jobs/view/12345/?trk=alert">Machine Learning Engineer</a>
    <p>Acme Robotics · Pune, Maharashtra, India</p>
    <p>₹900,000/year</p>
  </td></tr>
</table>
<table>
  <tr><td>
    <a href="https://tracking.example/l?url=https%3A%2F%2Fwww.linkedin.com%2Fjobs%2Fview%2F67890%2F">Robotics Software Engineer</a>
    <p>Beta Dynamics · Remote</p>
  </td></tr>
</table>
<a href="https://www.linkedin.com/jobs/search/">See all jobs</a>
</body></html>`

func TestParseAlertHTMLMergesAnchorsPerJob(t *testing.T) {
	got, err := parseAlertHTML(sampleAlert)
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "Machine Learning Engineer", first.Role)
	assert.Equal(t, "Acme Robotics", first.Company)
	assert.Equal(t, "Pune, Maharashtra, India", first.Location)
	assert.Equal(t, "₹900,000/year", first.Salary)
	assert.Equal(t, "email-alert", first.Source)
	assert.Contains(t, first.Link, "/jobs/view/12345")

	second := got[1]
	assert.Equal(t, "Robotics Software Engineer", second.Role)
	assert.Equal(t, "Beta Dynamics", second.Company)
	// redirect wrapper unwrapped to the real job URL
	assert.Equal(t, "https://www.linkedin.com/jobs/view/67890/", second.Link)
}

func TestParseAlertHTMLSkipsNonJobAnchors(t *testing.T) {
	got, err := parseAlertHTML(`<html><body><a href="https://example.com/x">Buy now</a></body></html>`)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHTMLBodyMultipart(t *testing.T) {
	raw := []byte("From: alerts@linkedin.com\r\n" +
		"Subject: job alert\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: multipart/alternative; boundary=BOUND\r\n" +
		"\r\n" +
		"--BOUND\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"plain version\r\n" +
		"--BOUND\r\n" +
		"Content-Type: text/html\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		"<html><body>rich=20version</body></html>\r\n" +
		"--BOUND--\r\n")

	got := htmlBody(raw)
	assert.Contains(t, got, "rich version")
}

func TestContainsAnyCI(t *testing.T) {
	assert.True(t, containsAnyCI("Your Job Alert for ML", []string{"job alert"}))
	assert.False(t, containsAnyCI("Invoice", []string{"job alert", "new jobs"}))
	assert.False(t, containsAnyCI("anything", nil))
}
