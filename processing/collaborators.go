package processing

//go:generate mockgen -source=collaborators.go -destination=mocks/collaborators.go -package=mocks

import (
	"StageDJ/audio"
	"StageDJ/emulator"
)

// Playlist picks something to play for a stage. Not every stage has music.
type Playlist interface {
	Pick(stage emulator.StageID) (audio.Source, bool)
}

type Player interface {
	Play(src audio.Source) (Playback, error)
}

// Playback is a song that is currently playing.
type Playback interface {
	Stop()
	SetVolume(vol float64)
}

// StatusProbe reads the current status without building a whole snapshot.
type StatusProbe interface {
	PollStatus() (emulator.Status, error)
}
