package board

import (
	"os"
	"path/filepath"

	htgotts "github.com/hegedustibor/htgo-tts"
	handlers "github.com/hegedustibor/htgo-tts/handlers"
	voices "github.com/hegedustibor/htgo-tts/voices"
)

const audioFolder = "audio"

// speak uses the Mplayer to announce the specified message when sound is
// turned on.
func (b *Board) speak(msg string) {
	if !b.sound {
		return
	}

	log := b.log

	go func() {
		speech := htgotts.Speech{Folder: audioFolder, Language: voices.English, Handler: &handlers.MPlayer{}}

		file := filepath.Join(audioFolder, "speech.mp3")
		os.Remove(file)

		fileName, err := speech.CreateSpeechFile(msg, "speech")
		if err != nil {
			log.Error().Err(err).Msg("create speech file")
			return
		}

		defer os.Remove(file)

		if err := speech.PlaySpeechFile(fileName); err != nil {
			log.Error().Err(err).Msg("play speech file")
			return
		}
	}()
}
