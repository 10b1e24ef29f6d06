package command

// resourcePlaceholder is the literal value the helper expects for --resource
// when no specific resource is requested. The single space is what azureauth
// interprets as "none"; do not substitute an empty string or a real resource
// without product sign-off.
const resourcePlaceholder = " "

// Translate maps a Command to the azureauth helper's argument vector.
//
// The layout is fixed: the client/tenant/resource prefix, then one
// --scope pair per requested scope in input order, then a trailing --clear
// for the clear action. The result is 6+2*len(scopes) elements for auth and
// 7+2*len(scopes) for clear. Translation is pure and total over Commands
// built by New; it performs no validation of its own.
func Translate(cmd Command) []string {
	args := []string{
		"--client", cmd.Client,
		"--tenant", cmd.Tenant,
		"--resource", resourcePlaceholder,
	}

	for _, scope := range cmd.Scopes {
		args = append(args, "--scope", scope)
	}

	if cmd.Action == ActionClear {
		args = append(args, "--clear")
	}

	return args
}
