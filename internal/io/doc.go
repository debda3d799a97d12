// Package ioutils provides file system and image processing utilities.
//
// # File Operations
//
//	// Materialize a download target with a meaningful extension
//	path, err := ioutils.TempFile(dir, "tagbot-*.ogg")
//
//	// Ensure the working directory exists
//	err := ioutils.EnsureDir("/tmp/tagbot")
//
// # Filename Sanitization
//
// Use SanitizeFileName to strip invalid characters before naming the
// document returned to the user:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2.mp3")
//
// # Cover Art
//
// The CoverService turns any common image into bounded JPEG bytes ready
// for an APIC frame:
//
//	svc := ioutils.NewCoverService(90)
//	cover, err := svc.NormalizeCover(ctx, imageData, 1000)
package ioutils
