// Package audio reads and rewrites performer credits stored in audio files.
//
// Example usage:
//
//	formatter, _ := performer.New(performer.DefaultConfig(), logger)
//	tagger := audio.NewTagger(formatter, audio.DefaultTagConfig(), logger)
//	res, err := tagger.FormatFile("/music/track.mp3", false)
//
// MP3 credits live in the ID3v2.4 TMCL frame as (role, person) pairs, or in
// IPLS for ID3v2.3 tags. Formatted files are saved as ID3v2.4 with a TXXX
// marker, and marked files are skipped unless TagConfig.Force is set.
//
// FLAC performer comments ("Name (role)", one PERFORMER field per credit)
// can be read and previewed with PreviewFile but are never written.
package audio
