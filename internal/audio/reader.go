package audio

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/dhowden/tag"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"github.com/handiism/format-performer-tags/internal/model"
)

// performerComment is the Vorbis comment name used for performer credits.
const performerComment = "PERFORMER"

// ErrUnsupportedFormat is returned by ReadPerformers for files that are not FLAC.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ReadPerformers reads performer credits from a FLAC file.
//
// Vorbis comments store a credit as "Name (role)", one PERFORMER field per
// credit. Values without a trailing role become credits with an empty role.
func ReadPerformers(path string) ([]model.Credit, tag.FileType, error) {
	fileType, err := identify(path)
	if err != nil {
		return nil, tag.UnknownFileType, err
	}
	if fileType != tag.FLAC {
		return nil, fileType, fmt.Errorf("%s: %s: %w", path, fileType, ErrUnsupportedFormat)
	}

	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, fileType, fmt.Errorf("parse %s: %w", path, err)
	}

	var credits []model.Credit
	for _, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, fileType, fmt.Errorf("vorbis comment in %s: %w", path, err)
		}
		// Field names are case-insensitive.
		for _, field := range cmt.Comments {
			name, value, ok := strings.Cut(field, "=")
			if ok && strings.EqualFold(name, performerComment) {
				credits = append(credits, parsePerformerComment(value))
			}
		}
	}
	return credits, fileType, nil
}

// identify sniffs the container format from the file header.
func identify(path string) (tag.FileType, error) {
	r, err := os.Open(path)
	if err != nil {
		return tag.UnknownFileType, err
	}
	defer r.Close()

	_, fileType, err := tag.Identify(r)
	if err != nil {
		return tag.UnknownFileType, fmt.Errorf("identify %s: %w", path, err)
	}
	return fileType, nil
}

// PreviewFile formats the credits of a read-only file without writing it.
func (t *Tagger) PreviewFile(path string) (*Result, error) {
	credits, fileType, err := ReadPerformers(path)
	if err != nil {
		return nil, err
	}
	t.logger.Debug("read performer comments", "path", path, "type", fileType, "count", len(credits))

	res := &Result{Path: path, Before: credits}
	if len(credits) > 0 {
		res.After = t.Format(credits)
		res.Changed = !slices.Equal(res.Before, res.After)
	}
	return res, nil
}

// parsePerformerComment splits "Name (role)" into a credit.
func parsePerformerComment(s string) model.Credit {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, ")") {
		if i := strings.LastIndex(s, " ("); i > 0 {
			return model.Credit{Role: s[i+2 : len(s)-1], Person: s[:i]}
		}
	}
	return model.Credit{Person: s}
}
