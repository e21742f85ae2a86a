package rodwrapper

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestVisibleText_SkipsScriptStyle(t *testing.T) {
	out := VisibleText(`
<html><head><title>Platonus</title><style>.x{}</style></head>
<body>
    <h1>Sign in</h1>
    <script>alert("hi")</script>
    <!-- comment -->
    <p>Wrong   login
       or password</p>
</body></html>`, nil)

	assert.Equal(t, "Sign in\nWrong login or password", out)
}

func TestVisibleText_InputHints(t *testing.T) {
	out := VisibleText(`<body>
<input id="login_input" placeholder="Login">
<input id="pass_input" type="password" value="Temp2022$">
<input id="Submit1" type="submit" value="Enter">
</body>`, nil)

	assert.Contains(t, out, "[Login]")
	assert.Contains(t, out, "[Enter]")
	assert.NotContains(t, out, "Temp2022$")
}

func TestVisibleText_Truncates(t *testing.T) {
	body := "<body><p>" + strings.Repeat("a", 100) + "</p></body>"

	out := VisibleText(body, &TextConfig{MaxOutputSize: 10})

	assert.True(t, strings.HasPrefix(out, strings.Repeat("a", 10)))
	assert.Contains(t, out, "(truncated)")
}

func TestVisibleText_TruncatesOnRuneBoundary(t *testing.T) {
	body := "<body><p>" + strings.Repeat("логин", 10) + "</p></body>"

	// Each Cyrillic letter is two bytes, so an odd limit lands mid-rune.
	out := VisibleText(body, &TextConfig{MaxOutputSize: 7})

	assert.True(t, utf8.ValidString(out))
	assert.True(t, strings.HasPrefix(out, "лог\n"))
	assert.Contains(t, out, "(truncated)")
}
