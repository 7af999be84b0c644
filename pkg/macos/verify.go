package macos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wassupdoc/alfred-natural-calendar/pkg/logging"
)

const contactsScriptTmpl = `
tell application "Contacts"
	set matchingContacts to {}
	repeat with theContact in every person
		repeat with theAddress in every address of theContact
			set addressText to formatted address of theAddress as string
			if addressText contains "%s" then
				set contactName to name of theContact
				set addressLabel to label of theAddress
				if addressLabel is missing value then
					set addressLabel to "address"
				end if
				copy (contactName & "|" & addressLabel & "|" & addressText) to the end of matchingContacts
			end if
		end repeat
	end repeat
	return matchingContacts
end tell
`

const mapsScriptTmpl = `
tell application "Maps"
	try
		set searchResults to search for "%s"
		set matchingLocations to {}
		repeat with i from 1 to count of searchResults
			if i > 3 then exit repeat
			set theResult to item i of searchResults
			copy (name of theResult & "|" & address of theResult) to the end of matchingLocations
		end repeat
		return matchingLocations
	on error
		return ""
	end try
end tell
`

// Verifier resolves location candidates through Contacts first, then
// Maps. Lookup failures are downgraded to "unverified": the candidate
// comes back unchanged and parsing proceeds.
type Verifier struct {
	// Timeout bounds each osascript call; 0 means no bound.
	Timeout time.Duration
}

func (v Verifier) Verify(candidate string) (bool, string) {
	ctx := context.Background()
	if v.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.Timeout)
		defer cancel()
	}

	if out, err := runOsascript(ctx, fmt.Sprintf(contactsScriptTmpl, escape(candidate))); err == nil && out != "" {
		if name, label, address, ok := splitMatch(out, 3); ok {
			return true, fmt.Sprintf("%s (%s): %s", name, label, address)
		}
	} else if err != nil {
		logging.Logger.Debugf("location=%q contacts lookup failed: %v", candidate, err)
	}

	if out, err := runOsascript(ctx, fmt.Sprintf(mapsScriptTmpl, escape(candidate))); err == nil && out != "" {
		if name, address, _, ok := splitMatch(out, 2); ok {
			return true, fmt.Sprintf("%s (%s)", name, address)
		}
	} else if err != nil {
		logging.Logger.Debugf("location=%q maps lookup failed: %v", candidate, err)
	}

	return false, candidate
}

// splitMatch takes the first result of an osascript list reply and splits
// its pipe-separated fields.
func splitMatch(out string, want int) (a, b, c string, ok bool) {
	first := strings.SplitN(out, ", ", 2)[0]
	parts := strings.SplitN(first, "|", want)
	if len(parts) != want {
		return "", "", "", false
	}
	a, b = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if want == 3 {
		c = strings.TrimSpace(parts[2])
	}
	return a, b, c, true
}
