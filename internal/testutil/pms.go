// Package testutil provides fakes for the viewer's tests: a Plex Media Server and scripted dialogs.
package testutil

import (
	"net/http"

	"codeberg.org/clambin/go-common/testutils"
)

// PMSIdentifier is the machine identifier reported by the fake Plex Media Server.
const PMSIdentifier = "pms-srv1"

// WithToken only passes requests to next if they carry the expected Plex token.
func WithToken(token string, next http.Handler) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if request.Header.Get("X-Plex-Token") != token {
			writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(writer, request)
	}
}

// PMS serves a small Plex Media Server: two library sections holding three movies and two shows,
// and two active sessions.
var PMS = testutils.TestServer{Responses: pmsResponses}

func get(body string) testutils.PathResponse {
	return testutils.PathResponse{http.MethodGet: testutils.Response{Body: body, StatusCode: http.StatusOK}}
}

var pmsResponses = map[string]testutils.PathResponse{
	"/identity": get(`{ "MediaContainer": {
		"size": 0,
		"claimed": true,
		"machineIdentifier": "` + PMSIdentifier + `",
		"version": "1.41.3"
	}}`),

	"/library/sections": get(`{ "MediaContainer": {
		"size": 2,
		"Directory": [
			{ "key": "1", "type": "movie", "title": "Movies" },
			{ "key": "2", "type": "show", "title": "Shows" }
		]
	}}`),

	"/library/sections/1/all": get(`{ "MediaContainer": {
		"Metadata": [
			{ "ratingKey": "11", "type": "movie", "title": "Blade Runner", "editionTitle": "Final Cut", "year": 1982,
			  "duration": 7065000, "originallyAvailableAt": "1982-06-25", "contentRating": "R", "rating": 8.9 },
			{ "ratingKey": "12", "type": "movie", "title": "Amélie", "originalTitle": "Le Fabuleux Destin d'Amélie Poulain", "year": 2001 },
			{ "ratingKey": "13", "type": "movie", "title": "Alien", "year": 1979 }
		]
	}}`),

	"/library/sections/2/all": get(`{ "MediaContainer": {
		"Metadata": [
			{ "ratingKey": "21", "type": "show", "title": "Severance", "year": 2022, "childCount": 2 },
			{ "ratingKey": "22", "type": "show", "title": "Andor", "year": 2022, "childCount": 2 }
		]
	}}`),

	"/status/sessions": get(`{ "MediaContainer": {
		"size": 2,
		"Metadata": [
			{ "User": { "title": "foo" }, "Player": { "product": "Plex Web" }, "Session": { "location": "lan" },
			  "grandparentTitle": "Severance", "parentIndex": 1, "index": 2, "title": "Half Loop", "type": "episode",
			  "duration": 1000, "viewOffset": 250,
			  "Media": [ { "Part": [ { "decision": "directplay" } ] } ] },
			{ "User": { "title": "bar" }, "Player": { "product": "Plex Web" }, "Session": { "location": "wan" },
			  "TranscodeSession": { "throttled": false, "videoDecision": "copy" }, "title": "Alien", "type": "movie",
			  "duration": 2000, "viewOffset": 1000,
			  "Media": [ { "Part": [ { "decision": "transcode" } ] } ] }
		]
	}}`),
}
