// Package web provides the HTTP server and page handlers for webeng.
//
// The server is a gin engine with three page routes and a static file tree:
//
//	GET  /                    index.html, username from the query string or "Anonymous"
//	GET  /profile/:username   profile.html, username from the path segment
//	POST /submit              redirect to /profile/<username> or to /
//	GET  /static/*filepath    files from WebConfig.StaticDir
//
// Pages are rendered through a TemplateEngine so handlers never touch
// html/template directly.
package web
