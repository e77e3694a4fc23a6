package plex

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/clambin/go-common/set"
)

// GetSessions retrieves the active playback sessions from the server.
func (c *PMSClient) GetSessions(ctx context.Context) ([]Session, error) {
	type response struct {
		Metadata []Session `json:"Metadata"`
		Size     int       `json:"size"`
	}
	resp, err := call[response](ctx, c, "/status/sessions")
	return resp.Metadata, err
}

// Session is one active playback session.
type Session struct {
	User             SessionUser       `json:"User"`
	Player           SessionPlayer     `json:"Player"`
	Session          SessionStats      `json:"Session"`
	TranscodeSession SessionTranscoder `json:"TranscodeSession"`
	GrandparentTitle string            `json:"grandparentTitle"`
	ParentTitle      string            `json:"parentTitle"`
	Title            string            `json:"title"`
	Type             string            `json:"type"`
	Media            []SessionMedia    `json:"Media"`
	Index            int               `json:"index"`
	ParentIndex      int               `json:"parentIndex"`
	Duration         int               `json:"duration"`
	ViewOffset       int               `json:"viewOffset"`
}

// SessionMedia contains one record in a Session's Media list
type SessionMedia struct {
	Part []SessionMediaPart `json:"Part"`
}

// SessionMediaPart contains one record in a SessionMedia's Part list
type SessionMediaPart struct {
	Decision string `json:"decision"`
}

// SessionUser contains the user details inside a Session
type SessionUser struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// SessionPlayer contains the player details inside a Session
type SessionPlayer struct {
	Device  string `json:"device"`
	Product string `json:"product"`
	State   string `json:"state"`
	Title   string `json:"title"`
	Local   bool   `json:"local"`
}

// SessionStats contains the session details inside a Session
type SessionStats struct {
	ID        string `json:"id"`
	Location  string `json:"location"`
	Bandwidth int    `json:"bandwidth"`
}

// SessionTranscoder contains the transcoder details inside a Session.
// If the session doesn't transcode any media streams, all fields will be blank.
type SessionTranscoder struct {
	VideoDecision string  `json:"videoDecision"`
	Speed         float64 `json:"speed"`
	Throttled     bool    `json:"throttled"`
}

// GetTitle returns the title of the movie, tv episode being played.  For movies, this is just the title.
// For TV Shows, it returns the show, season & episode title.
func (s Session) GetTitle() string {
	if s.Type == "episode" {
		return fmt.Sprintf("%s - S%02dE%02d - %s", s.GrandparentTitle, s.ParentIndex, s.Index, s.Title)
	}
	return s.Title
}

// GetProgress returns the progress of the session, i.e. how much of the movie / tv episode has been watched.
// Returns a percentage between 0.0 and 1.0
func (s Session) GetProgress() float64 {
	if s.Duration == 0 {
		return 0
	}
	return float64(s.ViewOffset) / float64(s.Duration)
}

// GetVideoMode returns the session's video mode (transcoding, direct play, etc).
func (s Session) GetVideoMode() string {
	decisions := set.New[string]()
	for _, media := range s.Media {
		for _, part := range media.Part {
			videoDecision := part.Decision
			if videoDecision == "transcode" {
				videoDecision = s.TranscodeSession.VideoDecision
			}
			if videoDecision == "" {
				videoDecision = "unknown"
			}
			decisions.Add(videoDecision)
		}
	}
	modes := decisions.ListOrdered()
	if len(modes) == 0 {
		return "unknown"
	}
	return strings.Join(modes, ",")
}
