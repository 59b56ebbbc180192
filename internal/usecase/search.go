package usecase

import (
	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
	"github.com/danielmartin/emacs-sourcegraph/internal/ports"
)

// Search builds a literal-pattern search link and hands it to the URL
// opener.
type Search struct {
	cfg    domain.Config
	prompt ports.Prompter
	opener ports.URLOpener
}

func NewSearch(cfg domain.Config, prompt ports.Prompter, opener ports.URLOpener) *Search {
	return &Search{cfg: cfg, prompt: prompt, opener: opener}
}

type SearchParams struct {
	// Query is used verbatim when non-empty.
	Query string
	// Default prefills the interactive prompt; editors pass the selection
	// text or the identifier under the cursor.
	Default string
	// Interactive enables the prompt when Query is empty.
	Interactive bool
}

func (uc *Search) Execute(p SearchParams) (string, error) {
	if err := uc.cfg.Validate(); err != nil {
		return "", err
	}

	query := p.Query
	if query == "" && p.Interactive {
		q, err := uc.prompt.ReadQuery(p.Default)
		if err != nil {
			return "", err
		}
		query = q
	}
	if query == "" {
		query = p.Default
	}

	u, err := domain.BuildSearchURL(uc.cfg.BaseURL, query)
	if err != nil {
		return "", err
	}

	if err := uc.opener.Open(u); err != nil {
		return "", err
	}
	return u, nil
}
