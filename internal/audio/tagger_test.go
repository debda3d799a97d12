package audio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
)

// writeAudioFixture creates a file with untagged, non-MPEG payload.
// id3v2 treats it as a tagless container, which is all the tagger needs.
func writeAudioFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "track.mp3")
	payload := bytes.Repeat([]byte("audio payload "), 64)
	if err := os.WriteFile(path, payload, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func preTag(t *testing.T, path, title, artist string) {
	t.Helper()

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("opening fixture for pre-tagging: %v", err)
	}
	defer tag.Close()

	if title != "" {
		tag.SetTitle(title)
	}
	if artist != "" {
		tag.SetArtist(artist)
	}
	if err := tag.Save(); err != nil {
		t.Fatalf("saving pre-tag: %v", err)
	}
}

func readTag(t *testing.T, path string) (title, artist string, pictures int) {
	t.Helper()

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopening tagged file: %v", err)
	}
	defer tag.Close()

	return tag.Title(), tag.Artist(), len(tag.GetFrames(tag.CommonID("Attached picture")))
}

func TestApplyTags_OverwriteLaw(t *testing.T) {
	path := writeAudioFixture(t)
	preTag(t, path, "Old Title", "Old Artist")

	if err := NewTagger().ApplyTags(path, Metadata{Title: "Song X"}); err != nil {
		t.Fatalf("ApplyTags() error = %v", err)
	}

	title, artist, _ := readTag(t, path)
	if title != "Song X" {
		t.Errorf("title = %q, want %q", title, "Song X")
	}
	if artist != "Old Artist" {
		t.Errorf("artist = %q, want preserved %q", artist, "Old Artist")
	}
}

func TestApplyTags_PreservationLaw(t *testing.T) {
	path := writeAudioFixture(t)
	preTag(t, path, "Keep Me", "Keep Me Too")

	if err := NewTagger().ApplyTags(path, Metadata{}); err != nil {
		t.Fatalf("ApplyTags() error = %v", err)
	}

	title, artist, _ := readTag(t, path)
	if title != "Keep Me" {
		t.Errorf("title = %q, want pre-existing %q", title, "Keep Me")
	}
	if artist != "Keep Me Too" {
		t.Errorf("artist = %q, want pre-existing %q", artist, "Keep Me Too")
	}
}

func TestApplyTags_FieldsIndependent(t *testing.T) {
	tests := []struct {
		name       string
		meta       Metadata
		wantTitle  string
		wantArtist string
	}{
		{"both set", Metadata{Title: "T", Artist: "A"}, "T", "A"},
		{"title only", Metadata{Title: "T"}, "T", "Prior Artist"},
		{"artist only", Metadata{Artist: "A"}, "Prior Title", "A"},
		{"neither", Metadata{}, "Prior Title", "Prior Artist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeAudioFixture(t)
			preTag(t, path, "Prior Title", "Prior Artist")

			if err := NewTagger().ApplyTags(path, tt.meta); err != nil {
				t.Fatalf("ApplyTags() error = %v", err)
			}

			title, artist, _ := readTag(t, path)
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if artist != tt.wantArtist {
				t.Errorf("artist = %q, want %q", artist, tt.wantArtist)
			}
		})
	}
}

func TestApplyTags_NoPriorNoValue(t *testing.T) {
	path := writeAudioFixture(t)

	if err := NewTagger().ApplyTags(path, Metadata{}); err != nil {
		t.Fatalf("ApplyTags() error = %v", err)
	}

	title, artist, _ := readTag(t, path)
	if title != "" || artist != "" {
		t.Errorf("tag = (%q, %q), want both absent", title, artist)
	}
}

func TestApplyTags_CoverReplacesExistingPictures(t *testing.T) {
	path := writeAudioFixture(t)

	// Embed two pictures first, as a dirty upload might carry.
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("opening fixture: %v", err)
	}
	for i := 0; i < 2; i++ {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/png",
			PictureType: id3v2.PTOther,
			Description: "old",
			Picture:     []byte{0x1, 0x2, 0x3},
		})
	}
	if err := tag.Save(); err != nil {
		t.Fatalf("saving fixture pictures: %v", err)
	}
	tag.Close()

	cover := []byte("jpeg-bytes-stand-in")
	if err := NewTagger().ApplyTags(path, Metadata{Cover: cover}); err != nil {
		t.Fatalf("ApplyTags() error = %v", err)
	}

	_, _, pictures := readTag(t, path)
	if pictures != 1 {
		t.Fatalf("attached pictures = %d, want exactly 1", pictures)
	}

	reopened, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	defer reopened.Close()

	frame, ok := reopened.GetFrames(reopened.CommonID("Attached picture"))[0].(id3v2.PictureFrame)
	if !ok {
		t.Fatal("expected a PictureFrame")
	}
	if frame.PictureType != id3v2.PTFrontCover {
		t.Errorf("picture type = %d, want front cover", frame.PictureType)
	}
	if frame.MimeType != "image/jpeg" {
		t.Errorf("mime type = %q, want image/jpeg", frame.MimeType)
	}
	if !bytes.Equal(frame.Picture, cover) {
		t.Error("embedded picture bytes do not match the supplied cover")
	}
}

func TestApplyTags_NilCoverKeepsExistingArt(t *testing.T) {
	path := writeAudioFixture(t)

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("opening fixture: %v", err)
	}
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     []byte{0xFF, 0xD8},
	})
	if err := tag.Save(); err != nil {
		t.Fatalf("saving fixture picture: %v", err)
	}
	tag.Close()

	if err := NewTagger().ApplyTags(path, Metadata{Title: "New"}); err != nil {
		t.Fatalf("ApplyTags() error = %v", err)
	}

	if _, _, pictures := readTag(t, path); pictures != 1 {
		t.Errorf("attached pictures = %d, existing art should survive", pictures)
	}
}

func TestApplyTags_MissingFile(t *testing.T) {
	if err := NewTagger().ApplyTags(filepath.Join(t.TempDir(), "nope.mp3"), Metadata{Title: "X"}); err == nil {
		t.Error("ApplyTags() should fail for a missing file")
	}
}
