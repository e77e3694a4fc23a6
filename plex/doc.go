/*
Package plex provides a client for a Plex Media Server (PMS).

A [PMSClient] talks to one server at one address, authenticated with a token. The token is normally the
resource's access token returned by plex.tv (see the [plextv] package), which already grants access to
that server:

	client := plex.NewPMSClient("http://plex-hostname:32400", resource.AccessToken)
	items, err := client.GetAllItems(ctx)

See [Finding an authentication token / X-Plex-Token] for other ways to obtain a token.

[Finding an authentication token / X-Plex-Token]: https://support.plex.tv/articles/204059436-finding-an-authentication-token-x-plex-token/
[plextv]: https://pkg.go.dev/github.com/clambin/plex-library-viewer/plex/plextv
*/
package plex
