package audio

import (
	"fmt"

	"github.com/bogem/id3v2"
)

// Metadata is what the user asked to change on a file.
//
// Empty Title/Artist means "preserve the existing value"; nil Cover
// means "leave embedded art untouched". This is the merge-not-clobber
// contract: saving the tag must not lose frames the user never touched.
type Metadata struct {
	// Title is the wanted TIT2 value. Empty preserves the existing one.
	Title string

	// Artist is the wanted TPE1 value. Empty preserves the existing one.
	Artist string

	// Cover is JPEG-encoded front cover art. Nil leaves existing
	// pictures alone; non-nil replaces all of them with this single one.
	Cover []byte
}

// Tagger writes ID3 tags to MP3 files with merge semantics.
//
// Example:
//
//	tagger := audio.NewTagger()
//	err := tagger.ApplyTags(workingPath, audio.Metadata{
//	    Title: "Midnight",   // overwrite
//	    Artist: "",          // keep whatever the file has
//	    Cover: jpegBytes,    // replace embedded art
//	})
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// ApplyTags mutates the embedded metadata of the file at path in place,
// creating a tag container if the file has none.
//
// For title and artist independently: a non-empty Metadata value
// overwrites the frame; an empty value re-writes the pre-existing frame
// value so it survives the save even if the container is rebuilt; if
// there is neither a prior nor a new value the frame stays absent.
//
// A non-nil cover removes every existing attached picture and embeds
// the new bytes as the single front-cover picture.
func (t *Tagger) ApplyTags(path string, meta Metadata) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tag container: %w", err)
	}
	defer tag.Close()

	if meta.Cover != nil {
		tag.DeleteFrames(tag.CommonID("Attached picture"))
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     meta.Cover,
		})
	}

	// Read prior values before touching the text frames.
	existingTitle := tag.Title()
	existingArtist := tag.Artist()

	switch {
	case meta.Title != "":
		tag.SetTitle(meta.Title)
	case existingTitle != "":
		tag.SetTitle(existingTitle)
	}

	switch {
	case meta.Artist != "":
		tag.SetArtist(meta.Artist)
	case existingArtist != "":
		tag.SetArtist(existingArtist)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag container: %w", err)
	}
	return nil
}
