package rod

// Pages served by httptest in the browser-backed tests.
const (
	BasicHTML = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Hello World</h1>
</body>
</html>`

	LoginHTML = `<!DOCTYPE html>
<html>
<head><title>Portal</title></head>
<body>
	<form id="loginForm" action="/dashboard" method="get">
		<input id="login_input" type="text" name="login" placeholder="Login" />
		<input id="pass_input" type="password" name="password" />
		<button id="Submit1" type="submit">Enter</button>
	</form>
</body>
</html>`

	DisabledSubmitHTML = `<!DOCTYPE html>
<html>
<body>
	<input id="login_input" type="text" />
	<input id="pass_input" type="password" />
	<button id="Submit1" type="submit" disabled>Enter</button>
</body>
</html>`

	DelayedFieldHTML = `<!DOCTYPE html>
<html>
<body>
	<div id="root"></div>
	<script>
		setTimeout(function() {
			var input = document.createElement('input');
			input.id = 'late_input';
			document.getElementById('root').appendChild(input);
		}, 300);
	</script>
</body>
</html>`

	CoveredSubmitHTML = `<!DOCTYPE html>
<html>
<body>
	<button id="Submit1" type="submit">Enter</button>
	<div id="overlay" style="position: fixed; top: 0; left: 0; width: 100%; height: 100%; z-index: 10; background: white;"></div>
</body>
</html>`

	ScrollableHTML = `<!DOCTYPE html>
<html>
<body style="height: 5000px;">
	<h1 id="top">Top of Page</h1>
	<div style="margin-top: 2000px;" id="middle">Middle</div>
	<div style="margin-top: 2000px;" id="bottom">Bottom</div>
</body>
</html>`
)
