// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the programmatic counterpart of the journal UI: it
manages the session token, edits the document field by field, and
renders view models for display.

# Session

Client caches the access token between calls through a TokenCache.
Reads never attach the token; writes always do. When the server bounces
a write with 401 or 403 the cache is cleared and ErrReauthRequired is
returned, which forces the caller back through Login. LoggedIn is a
local check only; an expired token is not detected until a write fails.

	c := client.New("http://localhost:3000", nil)
	if err := c.Login(password); err != nil { ... }
	doc, err := c.FetchDocument()

# Editing

Editor addresses individual string fields through FieldRef coordinates
and mutates the document in place. Controller adds the persistence
policy: every successful mutation pushes the entire document to the
save function. Saves are optimistic; a failed push leaves the local
edit in place and the next successful push carries it along. Items in
the diet and exercise lists are identified by position, so deleting an
item shifts the indexes of everything after it.

	ctrl := client.NewController(doc, c.SaveDocument)
	err := ctrl.EditField(client.FieldRef{
		Group: client.GroupDiet, Day: "Monday", Index: 0, Key: "notes",
	}, "Extra protein this week")

# View Models

The Build functions shape the raw document for display. The profile
card overlays the newest recorded progress week onto the static profile
and formats body fat as a percentage. Day lists put the seven weekdays
first and any custom day keys after them.
*/
package client
