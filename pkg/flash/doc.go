// Package flash handles transient notification banners.
//
// Dismisser removes a flash container some time after the page is shown: it
// waits Delay (4s by default), adds the fade classes to the container, waits
// FadeDuration (500ms) and removes the element. A container that is already
// gone at the first check is not an error. The run is one-shot; stopping it
// early is only possible through the context.
//
// Store carries a Message across a redirect in an HMAC-signed cookie. Pop
// reads and deletes it so a banner is shown once.
package flash
