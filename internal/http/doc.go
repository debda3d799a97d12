// Package http provides the HTTP client used to retrieve user uploads
// from the chat transport's file servers.
//
//	client := http.NewClient()
//	err := client.DownloadFile(ctx, fileURL, "/tmp/tagbot-1.ogg")
//
// Downloads are streamed to disk; uploads can be tens of megabytes and
// never need to live in memory.
package http
