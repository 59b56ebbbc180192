package ports

// Prompter covers the interactive questions the tool may need to ask. It is
// injected so resolution logic stays testable without a live terminal.
type Prompter interface {
	// SelectRemote asks the user to pick one of the given remote names.
	// The answer must come from that exact set; there is no free text.
	SelectRemote(names []string) (string, error)

	// ReadQuery asks for a search query, prefilled with def.
	ReadQuery(def string) (string, error)
}
