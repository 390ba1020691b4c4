package cmd

import (
	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/lib"
	"ripple-cli/term"
)

var controller *lib.Controller

// mustController resolves auth (prompting for sign in when signed out) and
// returns the shared feed controller. The login boundary in a CLI is an
// exit with a hint rather than a route change.
func mustController() *lib.Controller {
	auth.MustResolveAuth()

	if controller == nil {
		controller = lib.NewController(api.Client, term.Notifier{}, auth.Manager{}, func() {
			term.OutputErrorAndExit("You've been signed out. Run 'ripple sign-in' to sign in again.")
		})
	}

	return controller
}
