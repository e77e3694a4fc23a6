/*
Package plextv provides a minimal client for plex.tv.

[Config] holds the device identity that is presented to plex.tv and implements the traditional
username/password sign-in, which returns a legacy token. A [TokenSource] wraps that sign-in so the
token is requested once and cached for the lifetime of the process.

[Client] uses a TokenSource to query plex.tv on behalf of the signed-in user. It currently supports
the /api/v2/user and /api/v2/resources endpoints, which is enough to find the Plex Media Servers
linked to an account and the connections and access tokens needed to reach them.

Tokens are never written to disk.

[Plex API documentation]: https://developer.plex.tv/pms/#section/API-Info/Authenticating-with-Plex
*/
package plextv
