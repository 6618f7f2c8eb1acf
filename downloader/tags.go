package downloader

import (
	"github.com/bogem/id3v2"

	"tubefetch/backend/utils"
)

// tagAudioFile writes title/artist ID3 tags into a downloaded mp3. Best
// effort: the download already succeeded, so tagging problems are only logged.
func tagAudioFile(path, title, artist string) {
	log := utils.GetLogger("tags")

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("could not open audio file for tagging")
		return
	}
	defer tag.Close()

	if title != "" {
		tag.SetTitle(title)
	}
	if artist != "" {
		tag.SetArtist(artist)
	}
	if err := tag.Save(); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("could not save audio tags")
		return
	}
	log.Debug().Str("file", path).Msg("audio tags written")
}
