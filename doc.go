// Package formkit serves a form whose fields are validated on the server and
// whose error messages are patched into the live page over datastar
// server-sent events.
//
// Each field is described by a FormField: an id, a label, an HTML input type
// and a validator.RuleSet. Handler renders the page with one hidden error
// slot per field ("error_" + id by default) and exposes three routes:
//
//	GET  /          the form page, including a flash banner if one is pending
//	POST /validate  clears every slot, validates every field and streams
//	                the slot updates back to the browser
//	GET  /flash     fades and removes the flash banner after FLASH_DELAY
//
// Field definitions come from DefaultFields or a YAML schema file:
//
//	fields:
//	  - id: email
//	    label: Email
//	    input: email
//	    rules:
//	      required: true
//	      type: email
//
// Configuration is read from the environment, see Config.
package formkit
