package audio

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/handiism/format-performer-tags/internal/model"
	"github.com/handiism/format-performer-tags/internal/performer"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Frames holding musician credits.
const (
	// FrameMusicianCredits is the ID3v2.4 musician credits list frame.
	FrameMusicianCredits = "TMCL"

	// FrameInvolvedPeople is the ID3v2.3 involved people list. It is read
	// from v2.3 tags without TMCL and replaced by TMCL when the file is saved.
	FrameInvolvedPeople = "IPLS"

	frameUserText = "TXXX"
)

// DefaultMarker is the TXXX description recording that a file's credits
// have been formatted.
const DefaultMarker = "FORMAT_PERFORMER_TAGS"

// TagConfig holds tagging configuration for performer credits.
//
// Example:
//
//	cfg := &TagConfig{
//	    FrameID:  "TMCL",                  // Read and write musician credits
//	    Encoding: id3v2.EncodingUTF8,      // Requires ID3v2.4
//	    Marker:   "FORMAT_PERFORMER_TAGS", // Skip files formatted before
//	}
type TagConfig struct {
	// FrameID is the text frame holding (role, person) pairs.
	FrameID string

	// Encoding is used when frames are rewritten.
	Encoding id3v2.Encoding

	// Marker is the description of the TXXX frame added to formatted
	// files. Files carrying it are skipped. Empty disables marking.
	Marker string

	// Force formats files even if they carry the marker.
	Force bool
}

// DefaultTagConfig returns the default tag configuration.
//
// Credits are read from and written to TMCL using UTF-8, which is what
// MusicBrainz Picard writes for performer tags.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		FrameID:  FrameMusicianCredits,
		Encoding: id3v2.EncodingUTF8,
		Marker:   DefaultMarker,
	}
}

// Result describes the outcome of formatting one file.
type Result struct {
	// Path is the file that was processed.
	Path string

	// Before holds the credits read from the file.
	Before []model.Credit

	// After holds the formatted credits.
	After []model.Credit

	// Changed reports whether After differs from Before.
	Changed bool

	// Saved reports whether the file was written.
	Saved bool

	// Marked reports that the file carried the formatted marker.
	// Unless the tagger is forced, marked files are not read any further.
	Marked bool
}

// Tagger rewrites the performer credits stored in MP3 files.
//
// Tagger uses the id3v2 library to read the musician credits frame, runs
// the credits through a performer.Formatter and writes the result back.
//
// Example:
//
//	tagger := NewTagger(formatter, DefaultTagConfig(), logger)
//	res, err := tagger.FormatFile("/music/track.mp3", false)
//	if err != nil {
//	    log.Printf("Failed to format %s: %v", res.Path, err)
//	}
type Tagger struct {
	config    *TagConfig
	formatter *performer.Formatter
	logger    hclog.Logger
}

// NewTagger creates a new Tagger.
//
// If config is nil, DefaultTagConfig() is used. If logger is nil, a null
// logger is used.
func NewTagger(formatter *performer.Formatter, config *TagConfig, logger hclog.Logger) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Tagger{config: config, formatter: formatter, logger: logger}
}

// ReadCredits returns the musician credits stored in an MP3 file.
func (t *Tagger) ReadCredits(path string) ([]model.Credit, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{t.config.FrameID, FrameInvolvedPeople}})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer tag.Close()

	return t.readCredits(tag)
}

// readCredits returns the credits in TMCL, falling back to IPLS for tags
// older than ID3v2.4.
func (t *Tagger) readCredits(tag *id3v2.Tag) ([]model.Credit, error) {
	if text := tag.GetTextFrame(t.config.FrameID).Text; text != "" || tag.Version() >= 4 {
		return parseCredits(text), nil
	}

	f := tag.GetLastFrame(FrameInvolvedPeople)
	if f == nil {
		return nil, nil
	}
	text, err := frameText(f)
	if err != nil {
		return nil, fmt.Errorf("%s frame: %w", FrameInvolvedPeople, err)
	}
	return parseCredits(text), nil
}

func (t *Tagger) hasMarker(tag *id3v2.Tag) bool {
	if t.config.Marker == "" {
		return false
	}
	for _, f := range tag.GetFrames(frameUserText) {
		if udtf, ok := f.(id3v2.UserDefinedTextFrame); ok && udtf.Description == t.config.Marker {
			return true
		}
	}
	return false
}

// FormatFile formats the performer credits of an MP3 file.
//
// This method:
//  1. Opens the file and reads the musician credits frame (IPLS for v2.3)
//  2. Converts the credits to performer tags and formats them
//  3. Replaces the frame, adds the marker and saves the file as ID3v2.4
//
// Formatting is not idempotent, so files carrying the marker are skipped
// unless the config forces them. Files without credits, or whose credits
// are already in the configured format, are not written. With dryRun set
// nothing is written; the result still shows the credits the file would get.
func (t *Tagger) FormatFile(path string, dryRun bool) (*Result, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer tag.Close()

	res := &Result{Path: path}
	if t.hasMarker(tag) {
		res.Marked = true
		if !t.config.Force {
			t.logger.Debug("already formatted", "path", path)
			return res, nil
		}
	}

	res.Before, err = t.readCredits(tag)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(res.Before) == 0 {
		t.logger.Debug("no performer credits", "path", path)
		return res, nil
	}

	res.After = t.Format(res.Before)
	res.Changed = !slices.Equal(res.Before, res.After)
	if !res.Changed || dryRun {
		return res, nil
	}

	tag.DeleteFrames(t.config.FrameID)
	tag.DeleteFrames(FrameInvolvedPeople)
	tag.AddTextFrame(t.config.FrameID, t.config.Encoding, encodeCredits(res.After))
	if t.config.Marker != "" {
		tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
			Encoding:    t.config.Encoding,
			Description: t.config.Marker,
			Value:       "1",
		})
	}
	if tag.Version() < 4 {
		t.logger.Debug("upgrading tag to ID3v2.4", "path", path, "version", tag.Version())
		tag.SetVersion(4)
	}

	if err := tag.Save(); err != nil {
		return res, fmt.Errorf("save %s: %w", path, err)
	}
	res.Saved = true
	return res, nil
}

// Format runs credits through the formatter.
func (t *Tagger) Format(credits []model.Credit) []model.Credit {
	md := model.CreditsToMetadata(credits)
	t.formatter.FormatPerformerTags(md)
	return model.MetadataToCredits(md)
}

// parseCredits splits a null-separated credits list into pairs.
// A trailing role without a person is ignored.
func parseCredits(text string) []model.Credit {
	text = strings.TrimRight(text, "\x00")
	if text == "" {
		return nil
	}

	parts := strings.Split(text, "\x00")
	credits := make([]model.Credit, 0, len(parts)/2)
	for i := 0; i+1 < len(parts); i += 2 {
		credits = append(credits, model.Credit{Role: parts[i], Person: parts[i+1]})
	}
	return credits
}

// encodeCredits joins credits into a null-separated credits list.
func encodeCredits(credits []model.Credit) string {
	parts := make([]string, 0, len(credits)*2)
	for _, c := range credits {
		parts = append(parts, c.Role, c.Person)
	}
	return strings.Join(parts, "\x00")
}

// frameText returns the text of a frame the library parses as a text frame
// or leaves unparsed, such as IPLS.
func frameText(f id3v2.Framer) (string, error) {
	switch f := f.(type) {
	case id3v2.TextFrame:
		return f.Text, nil
	case id3v2.UnknownFrame:
		return decodeText(f.Body)
	}
	return "", fmt.Errorf("unexpected frame type %T", f)
}

// decodeText decodes a frame body that starts with an ID3 encoding byte.
func decodeText(body []byte) (string, error) {
	if len(body) == 0 {
		return "", nil
	}

	var dec *encoding.Decoder
	switch body[0] {
	case 0:
		dec = charmap.ISO8859_1.NewDecoder()
	case 1:
		dec = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	case 2:
		dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case 3:
		return string(body[1:]), nil
	default:
		return "", fmt.Errorf("unknown text encoding %d", body[0])
	}

	text, err := dec.Bytes(body[1:])
	if err != nil {
		return "", err
	}
	// Every UTF-16 string in a list carries its own BOM.
	return strings.ReplaceAll(string(text), "\uFEFF", ""), nil
}
